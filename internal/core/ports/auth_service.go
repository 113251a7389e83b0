package ports

import (
	"context"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// AuthService resolves session tokens and handles login/logout.
type AuthService interface {
	// Resolve maps a session token (the username) to an active user. It
	// returns nil, nil when the token is empty, unknown or not active.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// Logout records the logout of username, if any. It never fails.
	Logout(ctx context.Context, username string)
}
