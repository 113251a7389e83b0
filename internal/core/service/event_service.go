package service

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

type eventService struct {
	store    ports.DocumentStore
	activity ports.ActivityLogger
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewEventService returns the calendar EventService implementation.
func NewEventService(store ports.DocumentStore, activity ports.ActivityLogger, log zerolog.Logger) ports.EventService {
	return &eventService{
		store:    store,
		activity: activity,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return doc.Events, nil
}

func (s *eventService) Create(ctx context.Context, caller domain.Caller, in ports.CreateEventInput) (*domain.Event, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrLoginRequired
	}
	if in.Title == "" || in.Start == "" {
		return nil, domain.ErrEventFieldsMissing
	}

	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          s.newID(),
		Title:       in.Title,
		Start:       in.Start,
		End:         in.End,
		Description: in.Description,
		AllDay:      true,
		UserID:      caller.Identity.Username,
		CreatedAt:   formatTimestamp(s.now()),
	}
	if event.End == "" {
		event.End = in.Start
	}
	if in.AllDay != nil {
		event.AllDay = *in.AllDay
	}

	doc.Events = append(doc.Events, event)
	if err := writeDocument(ctx, s.store, doc); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activity, s.log, event.UserID, "Created event", event.Title)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, caller domain.Caller, in ports.UpdateEventInput) (*domain.Event, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrLoginRequired
	}

	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}

	i := doc.FindEvent(in.ID)
	if i < 0 {
		return nil, domain.ErrEventNotFound
	}
	event := doc.Events[i]
	if !event.CanBeModifiedBy(caller) {
		return nil, domain.ErrUnauthorized
	}

	if in.Title != "" {
		event.Title = in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Start != "" {
		event.Start = in.Start
	}
	if in.End != "" {
		event.End = in.End
	}
	if in.AllDay != nil {
		event.AllDay = *in.AllDay
	}
	event.UpdatedAt = formatTimestamp(s.now())

	if err := writeDocument(ctx, s.store, doc); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activity, s.log, caller.Identity.Username, "Updated event", event.Title)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsAuthenticated() {
		return domain.ErrLoginRequired
	}

	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return err
	}

	i := doc.FindEvent(id)
	if i < 0 {
		return domain.ErrEventNotFound
	}
	event := doc.Events[i]
	if !event.CanBeModifiedBy(caller) {
		return domain.ErrUnauthorized
	}

	doc.Events = slices.Delete(doc.Events, i, i+1)
	if err := writeDocument(ctx, s.store, doc); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.log, caller.Identity.Username, "Deleted event", event.Title)
	return nil
}
