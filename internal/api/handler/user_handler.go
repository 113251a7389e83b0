package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/domain"
	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// UserHandler serves account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser registers an account. Accounts created by an Administrator are
// active immediately; everything else waits for approval.
//
// @Summary      Create or request an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      500   {object}  response
// @Router       /create-user [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, domain.ErrMissingFields)
	}

	status, err := h.service.Register(c.Request().Context(), caller(c), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return fail(c, err)
	}

	if status == domain.StatusActive {
		return ok(c, "User created successfully.")
	}
	return ok(c, "Account request submitted. Awaiting admin approval.")
}

// ListUsers returns every account without password hashes.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  response
// @Router       /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context(), caller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}

// UpdateUser sets an account's role and optionally its password.
//
// @Summary      Update account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Changes"
// @Success      200   {object}  response
// @Router       /update-user [post]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, domain.ErrMissingFields)
	}

	err := h.service.UpdateUser(c.Request().Context(), caller(c), ports.UpdateUserInput{
		Username: req.Username,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "User updated")
}

// DeleteUser removes an account.
//
// @Summary      Delete account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      usernameRequest  true  "Account"
// @Success      200   {object}  response
// @Router       /delete-user [post]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := h.service.DeleteUser(c.Request().Context(), caller(c), req.Username); err != nil {
		return fail(c, err)
	}
	return ok(c, "")
}

// ApproveUser activates a pending account.
//
// @Summary      Approve account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      usernameRequest  true  "Account"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Failure      404   {object}  response
// @Router       /approve-user [post]
func (h *UserHandler) ApproveUser(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := h.service.ApproveUser(c.Request().Context(), caller(c), req.Username); err != nil {
		return failNotFound(c, err)
	}
	return ok(c, "")
}

// RejectUser deletes a pending account request.
//
// @Summary      Reject account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      usernameRequest  true  "Account"
// @Success      200   {object}  response
// @Failure      404   {object}  response
// @Router       /reject-user [post]
func (h *UserHandler) RejectUser(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := h.service.RejectUser(c.Request().Context(), caller(c), req.Username); err != nil {
		return failNotFound(c, err)
	}
	return ok(c, "")
}
