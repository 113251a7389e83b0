package ports

import (
	"context"

	"github.com/calendar-demo/demo-server/internal/core/domain"
)

// RoleService manages the role registry. All mutations are
// Administrator-only.
type RoleService interface {
	ListRoles(ctx context.Context) ([]string, error)
	CreateRole(ctx context.Context, caller domain.Caller, name string) error
	// RenameRole renames the registry entry and every user holding it in a
	// single store write.
	RenameRole(ctx context.Context, caller domain.Caller, oldName, newName string) error
	DeleteRole(ctx context.Context, caller domain.Caller, name string) error
}
