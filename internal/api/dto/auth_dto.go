package dto

import (
	"time"

	"github.com/spec-kit/soundwave/internal/domain"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the wire shape of an account.
type UserResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt *time.Time  `json:"createdAt,omitempty"`
}

// NewUserResponse maps the domain user, optionally exposing the creation
// timestamp (signup includes it, login does not).
func NewUserResponse(user *domain.User, withCreatedAt bool) UserResponse {
	resp := UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if withCreatedAt {
		createdAt := user.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
