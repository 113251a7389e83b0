package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// BootstrapCreator is recorded as createdBy on the seeded administrator.
const BootstrapCreator = "System"

// BootstrapAdmin seeds an active Administrator when the store has no users.
// It returns false when seeding was skipped, either because users already
// exist or because username is empty.
func BootstrapAdmin(
	ctx context.Context,
	store ports.DocumentStore,
	hasher ports.PasswordHasher,
	activity ports.ActivityLogger,
	log zerolog.Logger,
	username, password string,
) (bool, error) {
	if username == "" {
		log.Debug().Msg("bootstrap admin disabled")
		return false, nil
	}

	doc, err := readDocument(ctx, store)
	if err != nil {
		return false, err
	}
	if len(doc.Users) > 0 {
		log.Debug().Int("users", len(doc.Users)).Msg("users exist, skipping bootstrap")
		return false, nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}

	doc.Users = append(doc.Users, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdministrator,
		Status:       domain.StatusActive,
		CreatedBy:    BootstrapCreator,
	})
	if err := writeDocument(ctx, store, doc); err != nil {
		return false, err
	}

	recordActivity(ctx, activity, log, BootstrapCreator, "Bootstrap", "Username: "+username)
	log.Info().Str("username", username).Msg("bootstrapped administrator account")
	return true, nil
}
