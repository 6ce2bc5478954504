package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserProfile is the single active student profile. It is created with
// defaults on first run when nothing has been persisted yet.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Program   string    `json:"program"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultProfile returns the first-run profile.
func DefaultProfile() UserProfile {
	return UserProfile{
		ID:        "1",
		Name:      "Juan Pérez",
		Email:     "juan.perez@universidad.edu",
		Program:   "Ingeniería de Software",
		Level:     "6to Semestre",
		CreatedAt: time.Now().UTC(),
	}
}

// JWTClaims carries the session identity inside an access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and current profile.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Profile     UserProfile `json:"profile"`
}
