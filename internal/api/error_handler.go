package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// errorResponse is the failure envelope every endpoint shares.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler for errors that
// handlers did not render themselves:
//   - echo errors (bind failures, unknown routes) keep their status.
//   - authentication and authorization domain errors map to 401 and 403.
//   - anything else is logged and answered with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindUnauthenticated:
			return http.StatusUnauthorized, de.Message
		case domain.KindForbidden:
			return http.StatusForbidden, de.Message
		default:
			return http.StatusOK, de.Message
		}
	}

	// Store and hashing failures: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Bool("store_failure", errors.Is(err, domain.ErrStoreFailure)).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
