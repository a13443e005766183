package auth

import (
	"github.com/vahanbazar/vahanbazar-backend/internal/users"
)

// RegisterRequest captures the new-account payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	// ClientIP scopes the login rate limit; set by the controller,
	// never by the client payload.
	ClientIP string `json:"-"`
}

// AuthResponse contains the token and sanitized user returned by
// register and login.
type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}
