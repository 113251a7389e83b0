// @title        Demo Server API
// @version      1.0
// @description  Session-cookie accounts, role registry, activity log and shared calendar.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/api"
	"github.com/calendar-demo/demo-server/internal/api/handler"
	"github.com/calendar-demo/demo-server/internal/core/ports"
	"github.com/calendar-demo/demo-server/internal/core/service"
	"github.com/calendar-demo/demo-server/internal/infrastructure/db/file"
	"github.com/calendar-demo/demo-server/internal/infrastructure/db/mongo"
	"github.com/calendar-demo/demo-server/internal/infrastructure/db/redis"
	"github.com/calendar-demo/demo-server/internal/pkg/config"
	"github.com/calendar-demo/demo-server/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "demo-server",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()
	log.Info().Str("driver", cfg.Store.Driver).Msg("document store ready")

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	activity := service.NewActivityLogger(store)

	seeded, err := service.BootstrapAdmin(ctx, store, hasher, activity, logger.Component("bootstrap"),
		cfg.Bootstrap.Username, cfg.Bootstrap.Password)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if seeded {
		log.Warn().Str("username", cfg.Bootstrap.Username).Msg("seeded bootstrap administrator, change its password")
	}

	router := api.NewRouter(api.Dependencies{
		Store:    store,
		Auth:     service.NewAuthService(store, hasher, activity, logger.Component("auth")),
		Users:    service.NewUserService(store, hasher, activity, logger.Component("users")),
		Roles:    service.NewRoleService(store, activity, logger.Component("roles")),
		Events:   service.NewEventService(store, activity, logger.Component("events")),
		Activity: activity,
		Session: handler.SessionOptions{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		},
		Log: logger.Component("http"),
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("demo server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore builds the configured DocumentStore and the function that
// releases its connection.
func openStore(ctx context.Context, cfg *config.Config) (ports.DocumentStore, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
			AppName:  "demo-server",
		})
		if err != nil {
			return nil, nil, err
		}
		closer := closerFunc(func() error {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return client.Disconnect(disconnectCtx)
		})
		return mongo.NewDocumentStore(db, cfg.Store.Mongo.DocumentID), closer, nil

	case config.DriverRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redis.NewDocumentStore(client, cfg.Store.Redis.Key), client, nil

	default:
		return file.New(cfg.Store.File), closerFunc(func() error { return nil }), nil
	}
}
