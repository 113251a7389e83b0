package handler

import "github.com/calendar-demo/demo-server/internal/core/domain"

type createEventRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Start       string `json:"start"       validate:"required"`
	End         string `json:"end"`
	AllDay      *bool  `json:"allDay"`
}

// updateEventRequest fields are all optional; absent fields are left as
// they are.
type updateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	AllDay      *bool   `json:"allDay"`
}

type eventsResponse struct {
	Success bool            `json:"success"`
	Events  []*domain.Event `json:"events"`
}

type eventResponse struct {
	Success bool          `json:"success"`
	Event   *domain.Event `json:"event"`
}
