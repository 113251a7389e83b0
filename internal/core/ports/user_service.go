package ports

import (
	"context"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// RegisterInput carries a self-registration or admin-created account.
type RegisterInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput sets the role and, when Password is non-empty, replaces
// the password.
type UpdateUserInput struct {
	Username string
	Role     string
	Password string
}

// UserService manages the account lifecycle.
type UserService interface {
	// Register creates an account; the returned status is active when the
	// caller is an Administrator and pending otherwise.
	Register(ctx context.Context, caller domain.Caller, in RegisterInput) (domain.UserStatus, error)
	ListUsers(ctx context.Context, caller domain.Caller) ([]domain.UserSummary, error)
	UpdateUser(ctx context.Context, caller domain.Caller, in UpdateUserInput) error
	DeleteUser(ctx context.Context, caller domain.Caller, username string) error
	ApproveUser(ctx context.Context, caller domain.Caller, username string) error
	RejectUser(ctx context.Context, caller domain.Caller, username string) error
}
