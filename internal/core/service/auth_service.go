package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/pkg/metrics"
	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// AuthService implements identity resolution, login and logout.
type AuthService struct {
	store    ports.DocumentStore
	hasher   ports.PasswordHasher
	activity ports.ActivityLogger
	log      zerolog.Logger
}

func NewAuthService(store ports.DocumentStore, hasher ports.PasswordHasher, activity ports.ActivityLogger, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, hasher: hasher, activity: activity, log: log}
}

// Resolve reloads the store on every call, including for an empty token, so
// the request sees the latest persisted state.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return doc.FindActiveUser(token), nil
}

// Login checks existence, then approval, then the password. Failed
// attempts are counted but not written to the activity log.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	user := doc.FindUser(username)
	if user == nil {
		metrics.LoginAttemptsTotal.WithLabelValues("not_found").Inc()
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive() {
		metrics.LoginAttemptsTotal.WithLabelValues("not_active").Inc()
		return nil, domain.ErrAccountPending
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credential").Inc()
		return nil, domain.ErrInvalidPassword
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	recordActivity(ctx, s.activity, s.log, user.Username, "Login", "User logged in successfully")

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, username string) {
	if username == "" {
		return
	}
	recordActivity(ctx, s.activity, s.log, username, "Logout", "User logged out")
}
