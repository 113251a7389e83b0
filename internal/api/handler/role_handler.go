package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendar-demo/demo-server/internal/core/ports"
)

// RoleHandler serves the role registry.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type roleRequest struct {
	Role string `json:"role"`
}

type renameRoleRequest struct {
	OldRole string `json:"oldRole"`
	NewRole string `json:"newRole"`
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

// ListRoles returns the registry in order.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {object}  rolesResponse
// @Router       /roles [get]
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{Roles: roles})
}

// CreateRole appends a role to the registry.
//
// @Summary      Create role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Role"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Router       /create-role [post]
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := h.service.CreateRole(c.Request().Context(), caller(c), req.Role); err != nil {
		return fail(c, err)
	}
	return ok(c, "")
}

// UpdateRole renames a role and every account holding it.
//
// @Summary      Rename role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      renameRoleRequest  true  "Rename"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Router       /update-role [post]
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	var req renameRoleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := h.service.RenameRole(c.Request().Context(), caller(c), req.OldRole, req.NewRole); err != nil {
		return fail(c, err)
	}
	return ok(c, "")
}

// DeleteRole removes an unused, non-default role.
//
// @Summary      Delete role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Role"
// @Success      200   {object}  response
// @Failure      403   {object}  response
// @Router       /delete-role [post]
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := h.service.DeleteRole(c.Request().Context(), caller(c), req.Role); err != nil {
		return fail(c, err)
	}
	return ok(c, "")
}
