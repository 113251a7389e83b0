package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

func TestActivityLogger_AppendsInOrder(t *testing.T) {
	store := newMemStore(t, nil)
	logger := NewActivityLogger(store).(*activityLogger)
	logger.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("CET", 3600)) }

	ctx := context.Background()
	if err := logger.LogActivity(ctx, "admin", "Login", "User logged in successfully"); err != nil {
		t.Fatalf("LogActivity returned error: %v", err)
	}
	if err := logger.LogActivity(ctx, "admin", "Logout", "User logged out"); err != nil {
		t.Fatalf("LogActivity returned error: %v", err)
	}

	entries, err := logger.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].Action != "Login" || entries[1].Action != "Logout" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[0].Timestamp != "2024-01-02T02:04:05.006Z" {
		t.Fatalf("unexpected timestamp: %s", entries[0].Timestamp)
	}
	if store.reads != 3 || store.writes != 2 {
		t.Fatalf("expected one read/write cycle per append, got %d reads %d writes", store.reads, store.writes)
	}
}

func TestActivityLogger_PreservesOtherCollections(t *testing.T) {
	store := newMemStore(t, seededDoc(t))
	logger := NewActivityLogger(store)

	if err := logger.LogActivity(context.Background(), "admin", "Created role", "Editor"); err != nil {
		t.Fatalf("LogActivity returned error: %v", err)
	}
	if store.snapshot(t).FindUser("admin") == nil {
		t.Fatalf("appending must not drop users")
	}
}

func TestActivityLogger_StoreFailure(t *testing.T) {
	store := newMemStore(t, nil)
	store.writeErr = errors.New("quota exceeded")

	err := NewActivityLogger(store).LogActivity(context.Background(), "admin", "Login", "")
	if !errors.Is(err, domain.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
}
