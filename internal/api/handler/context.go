package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/api/middleware"
	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// caller returns the identity attached by middleware.Identity. A request
// that bypassed the middleware is treated as anonymous.
func caller(c echo.Context) domain.Caller {
	return middleware.CallerFrom(c)
}
