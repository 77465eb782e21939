package dto

import (
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePersonalRequest defines the body for creating a personnel record.
type CreatePersonalRequest struct {
	Email              string          `json:"email" binding:"required,email,max=255"`
	Password           string          `json:"password" binding:"required,min=8,max=72"`
	Nombre             string          `json:"nombre" binding:"required,max=255"`
	Rol                string          `json:"rol" binding:"required,rol"`
	UnidadesNegocio    []string        `json:"unidadesNegocio" binding:"omitempty,dive,required,max=100"`
	ComisionPorcentaje decimal.Decimal `json:"comisionPorcentaje" binding:"decimal_pct"`
}

// UpdatePersonalRequest defines the data allowed for updating a personnel record.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdatePersonalRequest struct {
	Email              *string          `json:"email" binding:"omitempty,email,max=255"`
	Nombre             *string          `json:"nombre" binding:"omitempty,max=255"`
	Rol                *string          `json:"rol" binding:"omitempty,rol"`
	UnidadesNegocio    *[]string        `json:"unidadesNegocio"`
	ComisionPorcentaje *decimal.Decimal `json:"comisionPorcentaje" binding:"omitempty,decimal_pct"`
}

// SetPasswordRequest replaces the password of a personnel record.
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// ListPersonalParams defines query parameters for listing personnel.
type ListPersonalParams struct {
	IncludeInactive bool `form:"includeInactive"`
	Limit           int  `form:"limit,default=20" binding:"min=0,max=200"`
	Offset          int  `form:"offset,default=0" binding:"min=0"`
}

// PersonalResponse is the public view of a personnel record. It never carries the password hash.
type PersonalResponse struct {
	PersonalID         string          `json:"personalID"`
	Email              string          `json:"email"`
	Nombre             string          `json:"nombre"`
	Rol                domain.Rol      `json:"rol"`
	UnidadesNegocio    []string        `json:"unidadesNegocio"`
	ComisionPorcentaje decimal.Decimal `json:"comisionPorcentaje"`
	Activo             bool            `json:"activo"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
}

// ToPersonalResponse converts a domain.Personal to PersonalResponse DTO
func ToPersonalResponse(p *domain.Personal) PersonalResponse {
	unidades := make([]string, len(p.UnidadesNegocio))
	copy(unidades, p.UnidadesNegocio)
	return PersonalResponse{
		PersonalID:         p.PersonalID,
		Email:              p.Email,
		Nombre:             p.Nombre,
		Rol:                p.Rol,
		UnidadesNegocio:    unidades,
		ComisionPorcentaje: p.ComisionPorcentaje,
		Activo:             p.Activo,
		CreatedAt:          p.CreatedAt,
		LastUpdatedAt:      p.LastUpdatedAt,
	}
}

// ToListPersonalResponse converts a slice of domain.Personal to PersonalResponse DTOs.
func ToListPersonalResponse(ps []domain.Personal) []PersonalResponse {
	out := make([]PersonalResponse, len(ps))
	for i := range ps {
		out[i] = ToPersonalResponse(&ps[i])
	}
	return out
}
