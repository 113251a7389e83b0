package ports

import (
	"context"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// DocumentStore loads and persists the whole shared document.
//
// Read returns a caller-owned snapshot; Write replaces the stored document
// with it. There is no locking between the two: concurrent read/modify/write
// cycles resolve last-write-wins.
type DocumentStore interface {
	Read(ctx context.Context) (*domain.Document, error)
	Write(ctx context.Context, doc *domain.Document) error
}
