package services

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// CredentialValidator resolves an email and password pair to the identity of an active
// personnel record. Every failure is apperrors.ErrUnauthorized.
type CredentialValidator interface {
	ValidateCredentials(ctx context.Context, email, password string) (*domain.Identity, error)
}

// TokenValidator resolves a bearer token to the identity of an active personnel record.
// Every failure is apperrors.ErrUnauthorized.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.Identity, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	IssueToken(ctx context.Context, identity *domain.Identity) (string, time.Time, error)
}

// AuthSvcFacade combines all authentication service interfaces
type AuthSvcFacade interface {
	CredentialValidator
	TokenValidator
	TokenIssuer
	// Login validates the credentials and issues a token for the resulting identity.
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	// Logout revokes the token identity was authenticated with.
	Logout(ctx context.Context, identity *domain.Identity) error
}

// GoogleAuthSvcFacade signs in existing, active personnel with a Google account.
type GoogleAuthSvcFacade interface {
	Enabled() bool
	// LoginURL returns the consent screen URL and the state value it embeds.
	LoginURL(ctx context.Context) (url string, state string, err error)
	LoginWithCode(ctx context.Context, code string) (*dto.LoginResponse, error)
	LoginWithIDToken(ctx context.Context, idToken string) (*dto.LoginResponse, error)
}
