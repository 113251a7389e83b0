package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/calendar-demo/demo-server/docs"
	"github.com/calendar-demo/demo-server/internal/api/handler"
	"github.com/calendar-demo/demo-server/internal/api/middleware"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Store    ports.DocumentStore
	Auth     ports.AuthService
	Users    ports.UserService
	Roles    ports.RoleService
	Events   ports.EventService
	Activity ports.ActivityLogger
	Session  handler.SessionOptions
	Log      zerolog.Logger

	// Registerer and Gatherer back the HTTP metrics and /metrics. They
	// default to the prometheus global registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "demo",
		Registerer: registerer,
	}))

	// --- Ops routes (no identity resolution) ---
	healthHandler := handler.NewHealthHandler(deps.Store)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Every application route resolves the session cookie first.
	app := e.Group("", middleware.Identity(deps.Auth, deps.Session.CookieName))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Session)
	app.POST("/login", authHandler.Login)
	app.POST("/logout", authHandler.Logout)
	app.GET("/check-auth", authHandler.CheckAuth)

	// --- Account routes; authorization is enforced by the service ---
	userHandler := handler.NewUserHandler(deps.Users)
	app.POST("/create-user", userHandler.CreateUser)
	app.GET("/users", userHandler.ListUsers)
	app.POST("/update-user", userHandler.UpdateUser)
	app.POST("/delete-user", userHandler.DeleteUser)
	app.POST("/approve-user", userHandler.ApproveUser)
	app.POST("/reject-user", userHandler.RejectUser)

	// --- Role registry ---
	roleHandler := handler.NewRoleHandler(deps.Roles)
	app.GET("/roles", roleHandler.ListRoles)
	app.POST("/create-role", roleHandler.CreateRole)
	app.POST("/update-role", roleHandler.UpdateRole)
	app.POST("/delete-role", roleHandler.DeleteRole)

	// --- Calendar ---
	eventHandler := handler.NewEventHandler(deps.Events)
	app.GET("/events", eventHandler.List)
	events := app.Group("/events", middleware.RequireAuthenticated())
	events.POST("", eventHandler.Create)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	// --- Audit ---
	activityHandler := handler.NewActivityHandler(deps.Activity)
	app.GET("/activity-log", activityHandler.List, middleware.RequireAdministrator())

	return e
}
