package ports

import (
	"context"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// CreateEventInput is the DTO for a new calendar event. A nil AllDay
// defaults to true.
type CreateEventInput struct {
	Title       string
	Description string
	Start       string
	End         string
	AllDay      *bool
}

// UpdateEventInput carries a partial update: empty strings and nil pointers
// leave the field untouched. Description is a pointer so it can be cleared.
type UpdateEventInput struct {
	ID          string
	Title       string
	Description *string
	Start       string
	End         string
	AllDay      *bool
}

// EventService is the calendar CRUD surface.
type EventService interface {
	List(ctx context.Context) ([]*domain.Event, error)
	Create(ctx context.Context, caller domain.Caller, in CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, caller domain.Caller, in UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}
