package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator verifies a Google ID token for the given audience.
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleAuthConfig configures Google sign-in. An empty ClientID or ClientSecret disables it.
type GoogleAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// Endpoint defaults to google.Endpoint.
	Endpoint oauth2.Endpoint
	// Validate defaults to idtoken.Validate.
	Validate IDTokenValidator
}

// googleAuthService signs in existing personnel whose verified Google email matches an active record.
// It never creates personnel.
type googleAuthService struct {
	BaseService
	cfg          GoogleAuthConfig
	oauth2Config *oauth2.Config
	personalRepo portsrepo.PersonalReader
	issuer       portssvc.TokenIssuer
}

// NewGoogleAuthService creates a new instance of googleAuthService.
func NewGoogleAuthService(cfg GoogleAuthConfig, personalRepo portsrepo.PersonalReader, issuer portssvc.TokenIssuer, base BaseService) portssvc.GoogleAuthSvcFacade {
	if cfg.Endpoint.TokenURL == "" {
		cfg.Endpoint = google.Endpoint
	}
	if cfg.Validate == nil {
		cfg.Validate = idtoken.Validate
	}
	return &googleAuthService{
		BaseService: base,
		cfg:         cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     cfg.Endpoint,
		},
		personalRepo: personalRepo,
		issuer:       issuer,
	}
}

func (s *googleAuthService) Enabled() bool {
	return s.cfg.ClientID != "" && s.cfg.ClientSecret != ""
}

func (s *googleAuthService) LoginURL(ctx context.Context) (string, string, error) {
	if !s.Enabled() {
		return "", "", apperrors.NewAppError(http.StatusNotFound, "google sign-in is not configured", nil)
	}
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

func (s *googleAuthService) LoginWithCode(ctx context.Context, code string) (*dto.LoginResponse, error) {
	if !s.Enabled() {
		return nil, apperrors.NewAppError(http.StatusNotFound, "google sign-in is not configured", nil)
	}
	if code == "" {
		return nil, apperrors.ErrUnauthorized
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogDebug(ctx, "Google code exchange failed", map[string]any{"reason": err.Error()})
		return nil, apperrors.ErrUnauthorized
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.LoginWithIDToken(ctx, rawIDToken)
}

func (s *googleAuthService) LoginWithIDToken(ctx context.Context, rawIDToken string) (*dto.LoginResponse, error) {
	if !s.Enabled() {
		return nil, apperrors.NewAppError(http.StatusNotFound, "google sign-in is not configured", nil)
	}
	payload, err := s.cfg.Validate(ctx, rawIDToken, s.cfg.ClientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token rejected", map[string]any{"reason": err.Error()})
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !verified {
		return nil, apperrors.ErrUnauthorized
	}

	p, err := s.personalRepo.FindActivePersonalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve google account: %w", err)
	}
	if !p.CanAuthenticate() {
		return nil, apperrors.ErrUnauthorized
	}
	return issueLoginResponse(ctx, s.issuer, p.CredentialIdentity())
}
