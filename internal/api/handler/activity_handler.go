package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

type ActivityHandler struct {
	activity ports.ActivityLogger
}

func NewActivityHandler(activity ports.ActivityLogger) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

type activityResponse struct {
	Success     bool                      `json:"success"`
	ActivityLog []domain.ActivityLogEntry `json:"activityLog"`
}

// List returns the audit trail in insertion order.
//
// @Summary      Activity log
// @Tags         activity
// @Produce      json
// @Success      200  {object}  activityResponse
// @Failure      401  {object}  response
// @Failure      403  {object}  response
// @Router       /activity-log [get]
func (h *ActivityHandler) List(c echo.Context) error {
	entries, err := h.activity.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityResponse{Success: true, ActivityLog: entries})
}
