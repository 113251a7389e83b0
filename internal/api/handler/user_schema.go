package handler

import "github.com/calendar-demo/demo-server/internal/core/domain"

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"role"     validate:"required"`
	Password string `json:"password"`
}

// usernameRequest is the body of delete, approve and reject.
type usernameRequest struct {
	Username string `json:"username"`
}

type usersResponse struct {
	Success bool                 `json:"success"`
	Users   []domain.UserSummary `json:"users"`
}
