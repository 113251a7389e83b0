package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newEventSvc(store *memStore, activity *stubActivity) *eventService {
	svc := NewEventService(store, activity, nopLog()).(*eventService)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "evt-1" }
	return svc
}

func seededEvents(t *testing.T) *memStore {
	doc := seededDoc(t)
	doc.Events = append(doc.Events, &domain.Event{
		ID:     "evt-alice",
		Title:  "Standup",
		Start:  "2024-03-01",
		End:    "2024-03-01",
		AllDay: true,
		UserID: "alice",
	})
	return newMemStore(t, doc)
}

func TestEventService_Create_Defaults(t *testing.T) {
	store := newMemStore(t, seededDoc(t))
	activity := &stubActivity{}
	svc := newEventSvc(store, activity)

	event, err := svc.Create(context.Background(), userCaller("alice"), ports.CreateEventInput{Title: "Standup", Start: "2024-03-01"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	want := domain.Event{
		ID:        "evt-1",
		Title:     "Standup",
		Start:     "2024-03-01",
		End:       "2024-03-01",
		AllDay:    true,
		UserID:    "alice",
		CreatedAt: "2024-03-01T09:30:00.000Z",
	}
	if *event != want {
		t.Fatalf("unexpected event:\n got %+v\nwant %+v", *event, want)
	}
	if len(store.snapshot(t).Events) != 1 {
		t.Fatalf("expected event to be persisted")
	}
	if len(activity.entries) != 1 || activity.entries[0].Action != "Created event" || activity.entries[0].Details != "Standup" {
		t.Fatalf("unexpected activity: %+v", activity.entries)
	}
}

func TestEventService_Create_ExplicitAllDayFalse(t *testing.T) {
	svc := newEventSvc(newMemStore(t, seededDoc(t)), &stubActivity{})
	allDay := false

	event, err := svc.Create(context.Background(), userCaller("alice"), ports.CreateEventInput{
		Title: "Review", Start: "2024-03-01T10:00", End: "2024-03-01T11:00", AllDay: &allDay,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if event.AllDay || event.End != "2024-03-01T11:00" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := newEventSvc(newMemStore(t, seededDoc(t)), &stubActivity{})

	if _, err := svc.Create(context.Background(), domain.Anonymous, ports.CreateEventInput{Title: "x", Start: "y"}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	if _, err := svc.Create(context.Background(), userCaller("alice"), ports.CreateEventInput{Title: "x"}); !errors.Is(err, domain.ErrEventFieldsMissing) {
		t.Fatalf("expected ErrEventFieldsMissing, got %v", err)
	}
}

func TestEventService_Update_PartialByOwner(t *testing.T) {
	store := seededEvents(t)
	svc := newEventSvc(store, &stubActivity{})
	desc := "daily sync"

	event, err := svc.Update(context.Background(), userCaller("alice"), ports.UpdateEventInput{ID: "evt-alice", Description: &desc})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if event.Title != "Standup" || event.Description != "daily sync" || event.UpdatedAt != "2024-03-01T09:30:00.000Z" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if got := store.snapshot(t).Events[0].Description; got != "daily sync" {
		t.Fatalf("expected update to be persisted, got %q", got)
	}
}

func TestEventService_Update_Authorization(t *testing.T) {
	store := seededEvents(t)
	svc := newEventSvc(store, &stubActivity{})

	if _, err := svc.Update(context.Background(), userCaller("bob"), ports.UpdateEventInput{ID: "evt-alice", Title: "Hijack"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), adminCaller(), ports.UpdateEventInput{ID: "evt-alice", Title: "Moved"}); err != nil {
		t.Fatalf("administrator update failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), adminCaller(), ports.UpdateEventInput{ID: "missing"}); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventService_Delete(t *testing.T) {
	store := seededEvents(t)
	activity := &stubActivity{}
	svc := newEventSvc(store, activity)

	if err := svc.Delete(context.Background(), userCaller("bob"), "evt-alice"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), userCaller("alice"), "evt-alice"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(store.snapshot(t).Events) != 0 {
		t.Fatalf("expected event to be removed")
	}
	if err := svc.Delete(context.Background(), userCaller("alice"), "evt-alice"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if got := activity.actions(); len(got) != 1 || got[0] != "Deleted event" {
		t.Fatalf("unexpected activity: %v", got)
	}
}
