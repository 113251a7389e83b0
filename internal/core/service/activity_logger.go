package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/pkg/metrics"
	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type activityLogger struct {
	store ports.DocumentStore
	now   func() time.Time
}

// NewActivityLogger returns an ActivityLogger that appends to the
// document's activityLog collection with its own read/write cycle.
func NewActivityLogger(store ports.DocumentStore) ports.ActivityLogger {
	return &activityLogger{store: store, now: time.Now}
}

func (l *activityLogger) LogActivity(ctx context.Context, user, action, details string) error {
	doc, err := readDocument(ctx, l.store)
	if err != nil {
		return err
	}

	doc.ActivityLog = append(doc.ActivityLog, domain.ActivityLogEntry{
		Timestamp: formatTimestamp(l.now()),
		User:      user,
		Action:    action,
		Details:   details,
	})

	return writeDocument(ctx, l.store, doc)
}

func (l *activityLogger) List(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	doc, err := readDocument(ctx, l.store)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.ActivityLog), nil
}

// recordActivity appends to the activity log after a primary mutation has
// been persisted. The log is not authoritative: failures are logged and
// counted but never returned.
func recordActivity(ctx context.Context, logger ports.ActivityLogger, log zerolog.Logger, user, action, details string) {
	if err := logger.LogActivity(ctx, user, action, details); err != nil {
		metrics.ActivityLogFailuresTotal.Inc()
		log.Warn().Err(err).
			Str("user", user).
			Str("action", action).
			Msg("failed to append activity log entry")
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func readDocument(ctx context.Context, store ports.DocumentStore) (*domain.Document, error) {
	doc, err := store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", domain.ErrStoreFailure, err)
	}
	return doc.Normalize(), nil
}

func writeDocument(ctx context.Context, store ports.DocumentStore, doc *domain.Document) error {
	if err := store.Write(ctx, doc); err != nil {
		return fmt.Errorf("%w: write: %w", domain.ErrStoreFailure, err)
	}
	return nil
}
