package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// memStore keeps the document serialized so every Read hands out an
// independent snapshot, like the real backends.
type memStore struct {
	mu       sync.Mutex
	data     []byte
	readErr  error
	writeErr error
	reads    int
	writes   int
}

func newMemStore(t *testing.T, doc *domain.Document) *memStore {
	t.Helper()
	s := &memStore{}
	if doc != nil {
		if err := s.Write(context.Background(), doc); err != nil {
			t.Fatalf("seed store: %v", err)
		}
		s.writes = 0
	}
	return s
}

func (s *memStore) Read(_ context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	if s.data == nil {
		return domain.NewDocument(), nil
	}
	var doc domain.Document
	if err := json.Unmarshal(s.data, &doc); err != nil {
		return nil, err
	}
	return doc.Normalize(), nil
}

func (s *memStore) Write(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.data = data
	s.writes++
	return nil
}

// snapshot reads the persisted document without counting as a read.
func (s *memStore) snapshot(t *testing.T) *domain.Document {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := domain.NewDocument()
	if s.data != nil {
		if err := json.Unmarshal(s.data, doc); err != nil {
			t.Fatalf("decode store: %v", err)
		}
	}
	return doc.Normalize()
}

type stubActivity struct {
	err     error
	entries []domain.ActivityLogEntry
}

func (a *stubActivity) LogActivity(_ context.Context, user, action, details string) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, domain.ActivityLogEntry{User: user, Action: action, Details: details})
	return nil
}

func (a *stubActivity) List(_ context.Context) ([]domain.ActivityLogEntry, error) {
	return a.entries, a.err
}

func (a *stubActivity) actions() []string {
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("entropy exhausted") }
func (failingHasher) Verify(string, string) bool  { return false }

// gateHasher blocks the first Hash call until release is closed, so a test
// can run a second operation inside the first one's read/write window.
type gateHasher struct {
	inner   ports.PasswordHasher
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGateHasher() *gateHasher {
	return &gateHasher{
		inner:   testHasher(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gateHasher) Hash(plaintext string) (string, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.inner.Hash(plaintext)
}

func (g *gateHasher) Verify(plaintext, hash string) bool {
	return g.inner.Verify(plaintext, hash)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := testHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return hash
}

// seededDoc returns a document with an active administrator "admin"
// (password "admin") plus the given users.
func seededDoc(t *testing.T, users ...*domain.User) *domain.Document {
	t.Helper()
	doc := domain.NewDocument()
	doc.Users = append(doc.Users, &domain.User{
		Username:     "admin",
		PasswordHash: mustHash(t, "admin"),
		Role:         domain.RoleAdministrator,
		Status:       domain.StatusActive,
		CreatedBy:    BootstrapCreator,
	})
	doc.Users = append(doc.Users, users...)
	return doc
}

func adminCaller() domain.Caller {
	return domain.Caller{
		Username: "admin",
		Identity: &domain.User{Username: "admin", Role: domain.RoleAdministrator, Status: domain.StatusActive},
	}
}

func userCaller(username string) domain.Caller {
	return domain.Caller{
		Username: username,
		Identity: &domain.User{Username: username, Role: domain.RoleUser, Status: domain.StatusActive},
	}
}

func nopLog() zerolog.Logger {
	return zerolog.Nop()
}
