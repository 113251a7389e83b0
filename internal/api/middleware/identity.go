package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// CallerKey is the echo context key holding the request's domain.Caller.
const CallerKey = "caller"

// IdentityResolver maps a session token to an active user.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Identity reads the session cookie, resolves it against the store and
// attaches a domain.Caller to the context. It never rejects a request: an
// absent, unknown or pending cookie yields a caller without identity. Only
// a store failure aborts the request.
func Identity(resolver IdentityResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			user, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(CallerKey, domain.Caller{Username: token, Identity: user})
			return next(c)
		}
	}
}

// CallerFrom returns the caller attached by Identity, or domain.Anonymous
// when the middleware did not run.
func CallerFrom(c echo.Context) domain.Caller {
	caller, _ := c.Get(CallerKey).(domain.Caller)
	return caller
}
