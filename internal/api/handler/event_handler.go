package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// EventHandler serves the shared calendar.
type EventHandler struct {
	service ports.EventService
}

// NewEventHandler creates an EventHandler backed by the given service.
func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /events.
//
// @Summary      List calendar events
// @Tags         events
// @Produce      json
// @Success      200  {object}  eventsResponse
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventsResponse{Success: true, Events: events})
}

// Create handles POST /events.
//
// @Summary      Create a calendar event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      createEventRequest  true  "Event"
// @Success      200   {object}  eventResponse
// @Failure      401   {object}  response
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, domain.ErrEventFieldsMissing)
	}

	event, err := h.service.Create(c.Request().Context(), caller(c), ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, eventResponse{Success: true, Event: event})
}

// Update handles PUT /events/:id.
//
// @Summary      Update a calendar event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Event ID"
// @Param        body  body      updateEventRequest  true  "Changes"
// @Success      200   {object}  eventResponse
// @Failure      403   {object}  response
// @Failure      404   {object}  response
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}

	event, err := h.service.Update(c.Request().Context(), caller(c), ports.UpdateEventInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
	})
	if err != nil {
		return failNotFound(c, err)
	}
	return c.JSON(http.StatusOK, eventResponse{Success: true, Event: event})
}

// Delete handles DELETE /events/:id.
//
// @Summary      Delete a calendar event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response
// @Failure      403  {object}  response
// @Failure      404  {object}  response
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("id")); err != nil {
		return failNotFound(c, err)
	}
	return ok(c, "")
}
