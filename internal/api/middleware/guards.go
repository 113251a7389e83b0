package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// RequireAuthenticated rejects requests without a resolved identity
// with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CallerFrom(c).IsAuthenticated() {
				return reject(c, http.StatusUnauthorized, domain.ErrLoginRequired)
			}
			return next(c)
		}
	}
}

// RequireAdministrator rejects requests without identity with 401 and
// identities whose role is not exactly "Administrator" with 403.
func RequireAdministrator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if !caller.IsAuthenticated() {
				return reject(c, http.StatusUnauthorized, domain.ErrLoginRequired)
			}
			if !caller.IsAdministrator() {
				return reject(c, http.StatusForbidden, domain.ErrAdminOnly)
			}
			return next(c)
		}
	}
}

func reject(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]any{"success": false, "message": err.Error()})
}
