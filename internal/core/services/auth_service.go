package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/utils"
	"github.com/google/uuid"
)

// TokenConfig holds the signing parameters of access tokens.
type TokenConfig struct {
	Secret string
	Issuer string
	Expiry time.Duration
}

// authService implements AuthSvcFacade. Both validators only ever accept active personnel and
// answer apperrors.ErrUnauthorized for every authentication failure.
type authService struct {
	BaseService
	personalRepo portsrepo.PersonalReader
	revocations  portsrepo.TokenRevocationStore
	tokens       TokenConfig
}

// NewAuthService creates a new authentication service. The secret must be non-empty; configuration
// validation guarantees it at startup.
func NewAuthService(personalRepo portsrepo.PersonalReader, revocations portsrepo.TokenRevocationStore, tokens TokenConfig, base BaseService) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  base,
		personalRepo: personalRepo,
		revocations:  revocations,
		tokens:       tokens,
	}
}

func (s *authService) ValidateCredentials(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrUnauthorized
	}

	p, err := s.personalRepo.FindActivePersonalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CompareDummyHash(password)
			s.LogDebug(ctx, "Login rejected: no active personal", map[string]any{"email": email})
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up personal for login", nil)
		return nil, fmt.Errorf("failed to validate credentials: %w", err)
	}

	if !p.CanAuthenticate() || !utils.CheckPasswordHash(password, p.PasswordHash) {
		s.LogDebug(ctx, "Login rejected: credential mismatch", map[string]any{"personal_id": p.PersonalID})
		return nil, apperrors.ErrUnauthorized
	}
	return p.CredentialIdentity(), nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	claims, err := utils.ParseAndValidateJWT(token, s.tokens.Secret, s.tokens.Issuer)
	if err != nil {
		s.LogDebug(ctx, "Token rejected", map[string]any{"reason": err.Error()})
		return nil, apperrors.ErrUnauthorized
	}

	if s.revocations != nil && claims.TokenID != "" {
		revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check token revocation", nil)
			return nil, fmt.Errorf("failed to validate token: %w", err)
		}
		if revoked {
			return nil, apperrors.ErrUnauthorized
		}
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		s.LogDebug(ctx, "Token rejected: subject is not a personal id", map[string]any{"sub": claims.Subject})
		return nil, apperrors.ErrUnauthorized
	}

	p, err := s.personalRepo.FindActivePersonalByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Token rejected: subject is not active personal", map[string]any{"sub": claims.Subject})
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to resolve token subject", nil)
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}
	if !p.CanAuthenticate() {
		return nil, apperrors.ErrUnauthorized
	}
	return p.TokenIdentity(claims.Subject, claims.TokenID, claims.ExpiresAt), nil
}

func (s *authService) IssueToken(ctx context.Context, identity *domain.Identity) (string, time.Time, error) {
	if identity == nil || identity.PersonalID == "" {
		return "", time.Time{}, errors.New("cannot issue token without identity")
	}
	token, claims, err := utils.GenerateJWT(identity.PersonalID, s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", map[string]any{"personal_id": identity.PersonalID})
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	identity, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return issueLoginResponse(ctx, s, identity)
}

func (s *authService) Logout(ctx context.Context, identity *domain.Identity) error {
	if identity == nil || identity.TokenID == "" {
		return apperrors.ErrUnauthorized
	}
	if s.revocations == nil {
		return errors.New("token revocation is not configured")
	}
	if err := s.revocations.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		s.LogError(ctx, err, "Failed to revoke token", map[string]any{"personal_id": identity.PersonalID})
		return fmt.Errorf("failed to logout: %w", err)
	}
	s.LogInfo(ctx, "Token revoked", map[string]any{"personal_id": identity.PersonalID})
	return nil
}

func issueLoginResponse(ctx context.Context, issuer portssvc.TokenIssuer, identity *domain.Identity) (*dto.LoginResponse, error) {
	token, expiresAt, err := issuer.IssueToken(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Personal: *identity}, nil
}
