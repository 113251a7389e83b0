package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/calendar-demo/demo-server/internal/pkg/metrics"
	"github.com/calendar-demo/demo-server/internal/core/domain"
)

const driverName = "redis"

// DocumentStore implements ports.DocumentStore by keeping the whole dataset
// as one JSON string under a single key. Writes are a plain SET with no
// expiry; there is no WATCH, so overlapping cycles are last-write-wins.
type DocumentStore struct {
	client *redis.Client
	key    string
}

// NewDocumentStore returns a store over key.
func NewDocumentStore(client *redis.Client, key string) *DocumentStore {
	return &DocumentStore{client: client, key: key}
}

func (s *DocumentStore) Read(ctx context.Context) (*domain.Document, error) {
	defer metrics.ObserveStore(driverName, "read", time.Now())

	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return doc.Normalize(), nil
}

func (s *DocumentStore) Write(ctx context.Context, doc *domain.Document) error {
	defer metrics.ObserveStore(driverName, "write", time.Now())

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.key, err)
	}
	return nil
}

// Ping checks connectivity for the readiness check.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
