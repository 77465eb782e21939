package domain

import (
	"slices"
	"time"
)

// Identity is the projection of an authenticated Personal attached to a request.
// It never carries the password hash.
type Identity struct {
	PersonalID      string    `json:"id"`
	Email           string    `json:"email"`
	Nombre          string    `json:"nombre"`
	Rol             Rol       `json:"rol"`
	UnidadesNegocio []string  `json:"unidadesNegocio,omitempty"`
	Subject         string    `json:"sub,omitempty"`
	TokenID         string    `json:"-"`
	ExpiresAt       time.Time `json:"-"`
}

// CredentialIdentity is the reduced projection returned after a password check.
func (p *Personal) CredentialIdentity() *Identity {
	return &Identity{
		PersonalID: p.PersonalID,
		Email:      p.Email,
		Nombre:     p.Nombre,
		Rol:        p.Rol,
	}
}

// TokenIdentity is the projection built after a bearer token resolves to p.
// The subject claim is re-embedded for downstream consumers.
func (p *Personal) TokenIdentity(subject, tokenID string, expiresAt time.Time) *Identity {
	return &Identity{
		PersonalID:      p.PersonalID,
		Email:           p.Email,
		Nombre:          p.Nombre,
		Rol:             p.Rol,
		UnidadesNegocio: slices.Clone(p.UnidadesNegocio),
		Subject:         subject,
		TokenID:         tokenID,
		ExpiresAt:       expiresAt,
	}
}

// HasRole reports whether the identity holds any of roles.
func (i *Identity) HasRole(roles ...Rol) bool {
	if i == nil {
		return false
	}
	return slices.Contains(roles, i.Rol)
}
