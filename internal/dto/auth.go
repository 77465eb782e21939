package dto

import (
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Personal  domain.Identity `json:"personal"`
}

// GoogleIDTokenRequest carries an ID token obtained by a client side Google sign-in.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleLoginURLResponse is returned by GET /auth/google/login.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
