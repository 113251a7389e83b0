package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/api/middleware"
	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

type stubAuthService struct {
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
	loginFn   func(ctx context.Context, username, password string) (*domain.User, error)
	loggedOut []string
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(_ context.Context, username string) {
	s.loggedOut = append(s.loggedOut, username)
}

type stubUserService struct {
	registerFn func(ctx context.Context, caller domain.Caller, in ports.RegisterInput) (domain.UserStatus, error)
	listFn     func(ctx context.Context, caller domain.Caller) ([]domain.UserSummary, error)
	updateFn   func(ctx context.Context, caller domain.Caller, in ports.UpdateUserInput) error
	deleteFn   func(ctx context.Context, caller domain.Caller, username string) error
	approveFn  func(ctx context.Context, caller domain.Caller, username string) error
	rejectFn   func(ctx context.Context, caller domain.Caller, username string) error
}

func (s *stubUserService) Register(ctx context.Context, caller domain.Caller, in ports.RegisterInput) (domain.UserStatus, error) {
	return s.registerFn(ctx, caller, in)
}

func (s *stubUserService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.UserSummary, error) {
	return s.listFn(ctx, caller)
}

func (s *stubUserService) UpdateUser(ctx context.Context, caller domain.Caller, in ports.UpdateUserInput) error {
	return s.updateFn(ctx, caller, in)
}

func (s *stubUserService) DeleteUser(ctx context.Context, caller domain.Caller, username string) error {
	return s.deleteFn(ctx, caller, username)
}

func (s *stubUserService) ApproveUser(ctx context.Context, caller domain.Caller, username string) error {
	return s.approveFn(ctx, caller, username)
}

func (s *stubUserService) RejectUser(ctx context.Context, caller domain.Caller, username string) error {
	return s.rejectFn(ctx, caller, username)
}

type stubRoleService struct {
	listFn   func(ctx context.Context) ([]string, error)
	createFn func(ctx context.Context, caller domain.Caller, name string) error
	renameFn func(ctx context.Context, caller domain.Caller, oldName, newName string) error
	deleteFn func(ctx context.Context, caller domain.Caller, name string) error
}

func (s *stubRoleService) ListRoles(ctx context.Context) ([]string, error) {
	return s.listFn(ctx)
}

func (s *stubRoleService) CreateRole(ctx context.Context, caller domain.Caller, name string) error {
	return s.createFn(ctx, caller, name)
}

func (s *stubRoleService) RenameRole(ctx context.Context, caller domain.Caller, oldName, newName string) error {
	return s.renameFn(ctx, caller, oldName, newName)
}

func (s *stubRoleService) DeleteRole(ctx context.Context, caller domain.Caller, name string) error {
	return s.deleteFn(ctx, caller, name)
}

type stubEventService struct {
	listFn   func(ctx context.Context) ([]*domain.Event, error)
	createFn func(ctx context.Context, caller domain.Caller, in ports.CreateEventInput) (*domain.Event, error)
	updateFn func(ctx context.Context, caller domain.Caller, in ports.UpdateEventInput) (*domain.Event, error)
	deleteFn func(ctx context.Context, caller domain.Caller, id string) error
}

func (s *stubEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.listFn(ctx)
}

func (s *stubEventService) Create(ctx context.Context, caller domain.Caller, in ports.CreateEventInput) (*domain.Event, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubEventService) Update(ctx context.Context, caller domain.Caller, in ports.UpdateEventInput) (*domain.Event, error) {
	return s.updateFn(ctx, caller, in)
}

func (s *stubEventService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	return s.deleteFn(ctx, caller, id)
}

// newContext builds an echo context for a JSON request. A non-nil caller
// is attached the way middleware.Identity would.
func newContext(t *testing.T, method, path, body string, who *domain.Caller) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if who != nil {
		c.Set(middleware.CallerKey, *who)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return body
}

func expectFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d", status, rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != false || body["message"] != message {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func expectBareSuccess(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success, got %+v", body)
	}
	if _, present := body["message"]; present {
		t.Fatalf("expected no message, got %+v", body)
	}
}

func expectHTTPError(t *testing.T, err error, status int) {
	t.Helper()
	he, isHTTP := err.(*echo.HTTPError)
	if !isHTTP {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != status {
		t.Fatalf("expected %d, got %d", status, he.Code)
	}
}

func adminCaller() *domain.Caller {
	return &domain.Caller{
		Username: "admin",
		Identity: &domain.User{Username: "admin", Role: domain.RoleAdministrator, Status: domain.StatusActive},
	}
}

func userCaller(name string) *domain.Caller {
	return &domain.Caller{
		Username: name,
		Identity: &domain.User{Username: name, Role: domain.RoleUser, Status: domain.StatusActive},
	}
}
