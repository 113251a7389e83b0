package service

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/pkg/metrics"
	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

type roleService struct {
	store    ports.DocumentStore
	activity ports.ActivityLogger
	log      zerolog.Logger
}

// NewRoleService returns a RoleService implementation.
func NewRoleService(store ports.DocumentStore, activity ports.ActivityLogger, log zerolog.Logger) ports.RoleService {
	return &roleService{store: store, activity: activity, log: log}
}

func (s *roleService) ListRoles(ctx context.Context) ([]string, error) {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Roles), nil
}

func (s *roleService) CreateRole(ctx context.Context, caller domain.Caller, name string) error {
	doc, err := s.loadForAdmin(ctx, caller)
	if err != nil {
		return err
	}

	if name == "" {
		return domain.ErrRoleNameRequired
	}
	if doc.HasRole(name) {
		return domain.ErrRoleExists
	}

	doc.Roles = append(doc.Roles, name)
	if err := writeDocument(ctx, s.store, doc); err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("create").Inc()
	recordActivity(ctx, s.activity, s.log, caller.Username, "Created role", name)
	return nil
}

// RenameRole rewrites the registry entry in place and cascades onto users.
// Both mutations land in the same write.
func (s *roleService) RenameRole(ctx context.Context, caller domain.Caller, oldName, newName string) error {
	doc, err := s.loadForAdmin(ctx, caller)
	if err != nil {
		return err
	}

	if oldName == "" || newName == "" {
		return domain.ErrMissingFields
	}
	if !doc.HasRole(oldName) {
		return domain.ErrOldRoleNotFound
	}
	if doc.HasRole(newName) {
		return domain.ErrRoleExists
	}

	for i, r := range doc.Roles {
		if r == oldName {
			doc.Roles[i] = newName
		}
	}
	moved := 0
	for _, u := range doc.Users {
		if u.Role == oldName {
			u.Role = newName
			moved++
		}
	}

	if err := writeDocument(ctx, s.store, doc); err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("rename").Inc()
	recordActivity(ctx, s.activity, s.log, caller.Username, "Updated role", oldName+" → "+newName)

	s.log.Info().Str("from", oldName).Str("to", newName).Int("users", moved).Msg("role renamed")
	return nil
}

// DeleteRole removes a role from the registry. Deleting a name that is not
// registered is a no-op success.
func (s *roleService) DeleteRole(ctx context.Context, caller domain.Caller, name string) error {
	doc, err := s.loadForAdmin(ctx, caller)
	if err != nil {
		return err
	}

	if domain.IsDefaultRole(name) {
		return domain.ErrDefaultRole
	}
	if doc.RoleInUse(name) {
		return domain.ErrRoleInUseBy
	}

	doc.Roles = slices.DeleteFunc(doc.Roles, func(r string) bool { return r == name })
	if err := writeDocument(ctx, s.store, doc); err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("delete").Inc()
	recordActivity(ctx, s.activity, s.log, caller.Username, "Deleted role", name)
	return nil
}

func (s *roleService) loadForAdmin(ctx context.Context, caller domain.Caller) (*domain.Document, error) {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdministrator() {
		return nil, domain.ErrUnauthorized
	}
	return doc, nil
}
