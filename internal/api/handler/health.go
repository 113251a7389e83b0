package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/ports"
)

const readinessTimeout = 2 * time.Second

// pinger is implemented by store drivers that hold a network connection.
type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store ports.DocumentStore
}

func NewHealthHandler(store ports.DocumentStore) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Liveness reports that the process is serving requests.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// Readiness checks that the document store is reachable. Drivers with a
// connection are pinged; the rest must serve a read.
//
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	var err error
	if p, isPinger := h.store.(pinger); isPinger {
		err = p.Ping(ctx)
	} else {
		_, err = h.store.Read(ctx)
	}

	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{
			Status: "unavailable",
			Checks: map[string]string{"store": "unreachable"},
		})
	}
	return c.JSON(http.StatusOK, healthResponse{
		Status: "ready",
		Checks: map[string]string{"store": "ok"},
	})
}
