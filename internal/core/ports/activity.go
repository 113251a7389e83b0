package ports

import (
	"context"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// ActivityLogger appends audit entries to the shared document.
type ActivityLogger interface {
	LogActivity(ctx context.Context, user, action, details string) error
	List(ctx context.Context) ([]domain.ActivityLogEntry, error)
}
