package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// response is the {success, message} envelope shared by every endpoint.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, response{Success: true, Message: message})
}

// fail renders a domain error as a failure envelope. Validation failures
// are ordinary 200 responses; only authentication and authorization
// failures change the status. Anything outside the domain taxonomy is
// returned as-is for the central error handler.
func fail(c echo.Context, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		return err
	}
	return c.JSON(statusFor(de), response{Success: false, Message: de.Message})
}

// failNotFound is fail for endpoints that answer a missing target with 404.
func failNotFound(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, response{Success: false, Message: err.Error()})
	}
	return fail(c, err)
}

func statusFor(err *domain.Error) int {
	switch err.Kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusOK
	}
}

func invalidPayload() error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
}
