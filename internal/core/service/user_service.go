package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/calendar-demo/demo-server/internal/pkg/metrics"
	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

type userService struct {
	store    ports.DocumentStore
	hasher   ports.PasswordHasher
	activity ports.ActivityLogger
	log      zerolog.Logger
}

// NewUserService returns a UserService implementation.
//
// Every operation is one read → validate → mutate → write cycle followed by
// an activity log append. The username uniqueness check is not atomic with
// the write; two overlapping registrations of the same name can both pass
// it, and the later write wins.
func NewUserService(
	store ports.DocumentStore,
	hasher ports.PasswordHasher,
	activity ports.ActivityLogger,
	log zerolog.Logger,
) ports.UserService {
	return &userService{store: store, hasher: hasher, activity: activity, log: log}
}

func (s *userService) Register(ctx context.Context, caller domain.Caller, in ports.RegisterInput) (domain.UserStatus, error) {
	createdBy := caller.Username
	if createdBy == "" {
		createdBy = domain.PublicCreator
	}

	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return "", err
	}

	if in.Username == "" || in.Password == "" || in.Role == "" {
		return "", domain.ErrMissingFields
	}
	if doc.FindUser(in.Username) != nil {
		return "", domain.ErrUsernameTaken
	}

	status := domain.StatusPending
	if caller.IsAdministrator() {
		status = domain.StatusActive
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("register %q: %w", in.Username, err)
	}

	doc.Users = append(doc.Users, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       status,
		CreatedBy:    createdBy,
	})
	if err := writeDocument(ctx, s.store, doc); err != nil {
		return "", err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(status)).Inc()

	action := "Account requested"
	if status == domain.StatusActive {
		action = "Created user"
	}
	recordActivity(ctx, s.activity, s.log, createdBy, action,
		fmt.Sprintf("Username: %s, Role: %s", in.Username, in.Role))

	s.log.Info().
		Str("username", in.Username).
		Str("role", in.Role).
		Str("status", string(status)).
		Str("created_by", createdBy).
		Msg("account created")

	return status, nil
}

func (s *userService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.UserSummary, error) {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdministrator() {
		return nil, domain.ErrUnauthorized
	}

	users := make([]domain.UserSummary, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, u.Summary())
	}
	return users, nil
}

// UpdateUser performs no Administrator check. Any caller, including an
// anonymous one, may use it.
func (s *userService) UpdateUser(ctx context.Context, caller domain.Caller, in ports.UpdateUserInput) error {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return err
	}

	if in.Username == "" || in.Role == "" {
		return domain.ErrMissingFields
	}

	user := doc.FindUser(in.Username)
	if user == nil {
		s.log.Debug().Str("username", in.Username).Int("users", len(doc.Users)).Msg("update target not found")
		return domain.ErrUserNotFound
	}

	user.Role = in.Role
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("update %q: %w", in.Username, err)
		}
		user.PasswordHash = hash
	}

	if err := writeDocument(ctx, s.store, doc); err != nil {
		return err
	}

	metrics.AccountTransitionsTotal.WithLabelValues("update").Inc()

	details := fmt.Sprintf("Username: %s, New role: %s", in.Username, in.Role)
	if in.Password != "" {
		details += ", password changed"
	}
	recordActivity(ctx, s.activity, s.log, caller.Username, "Updated user", details)
	return nil
}

// DeleteUser performs no Administrator check.
func (s *userService) DeleteUser(ctx context.Context, caller domain.Caller, username string) error {
	if err := s.remove(ctx, username); err != nil {
		return err
	}

	metrics.AccountTransitionsTotal.WithLabelValues("delete").Inc()
	recordActivity(ctx, s.activity, s.log, caller.Username, "Deleted user", "Username: "+username)
	return nil
}

func (s *userService) ApproveUser(ctx context.Context, caller domain.Caller, username string) error {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return err
	}
	if !caller.IsAdministrator() {
		return domain.ErrUnauthorized
	}

	user := doc.FindUser(username)
	if user == nil {
		return domain.ErrUserNotFound
	}

	user.Status = domain.StatusActive
	if err := writeDocument(ctx, s.store, doc); err != nil {
		return err
	}

	metrics.AccountTransitionsTotal.WithLabelValues("approve").Inc()
	recordActivity(ctx, s.activity, s.log, caller.Username, "Approved user", "Username: "+username)
	return nil
}

// RejectUser deletes the account outright; there is no terminal "rejected"
// status. Like DeleteUser it performs no Administrator check.
func (s *userService) RejectUser(ctx context.Context, caller domain.Caller, username string) error {
	if err := s.remove(ctx, username); err != nil {
		return err
	}

	metrics.AccountTransitionsTotal.WithLabelValues("reject").Inc()
	recordActivity(ctx, s.activity, s.log, caller.Username, "Rejected user", "Username: "+username)
	return nil
}

func (s *userService) remove(ctx context.Context, username string) error {
	doc, err := readDocument(ctx, s.store)
	if err != nil {
		return err
	}
	if !doc.RemoveUser(username) {
		return domain.ErrUserNotFound
	}
	return writeDocument(ctx, s.store, doc)
}
