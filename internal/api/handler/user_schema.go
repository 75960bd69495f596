package handler

import "github.com/soloapps/user-service/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is a partial patch; absent fields leave the stored
// value untouched. Email is deliberately not accepted here.
type updateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// --- Response types ---

type loginResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type listUsersResponse struct {
	Items      []domain.Projection `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalPages int                 `json:"total_pages"`
}
