package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calendar-demo/demo-server/internal/pkg/metrics"
	"github.com/calendar-demo/demo-server/internal/core/domain"
)

const (
	driverName          = "mongo"
	collectionDocuments = "documents"
)

// DocumentStore implements ports.DocumentStore by keeping the whole dataset
// in a single MongoDB document, replaced on every write.
type DocumentStore struct {
	col *mongo.Collection
	id  string
}

// NewDocumentStore returns a store over the document with _id = id in the
// documents collection.
func NewDocumentStore(db *mongo.Database, id string) *DocumentStore {
	return &DocumentStore{col: db.Collection(collectionDocuments), id: id}
}

type mongoDocument struct {
	ID              string `bson:"_id"`
	domain.Document `bson:",inline"`
}

func (s *DocumentStore) Read(ctx context.Context) (*domain.Document, error) {
	defer metrics.ObserveStore(driverName, "read", time.Now())

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var md mongoDocument
	err := s.col.FindOne(ctx, bson.M{"_id": s.id}).Decode(&md)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document: %w", err)
	}

	doc := md.Document
	return doc.Normalize(), nil
}

func (s *DocumentStore) Write(ctx context.Context, doc *domain.Document) error {
	defer metrics.ObserveStore(driverName, "write", time.Now())

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	md := mongoDocument{ID: s.id, Document: *doc}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": s.id}, md, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Ping checks connectivity for the readiness check.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}
