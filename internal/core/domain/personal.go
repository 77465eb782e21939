package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rol is the closed set of roles a member of the staff can hold.
type Rol string

const (
	RolAdmin     Rol = "admin"
	RolUser      Rol = "user"
	RolEncargado Rol = "encargado"
)

// Roles lists every valid Rol.
var Roles = []Rol{RolAdmin, RolUser, RolEncargado}

// Valid reports whether r is one of the known roles.
func (r Rol) Valid() bool {
	switch r {
	case RolAdmin, RolUser, RolEncargado:
		return true
	}
	return false
}

// Personal is a staff member. Only active personnel can authenticate.
type Personal struct {
	PersonalID         string          `json:"personalID"`
	Email              string          `json:"email"`
	PasswordHash       string          `json:"-"`
	Nombre             string          `json:"nombre"`
	Rol                Rol             `json:"rol"`
	UnidadesNegocio    []string        `json:"unidadesNegocio"`
	ComisionPorcentaje decimal.Decimal `json:"comisionPorcentaje"`
	Activo             bool            `json:"activo"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// CanAuthenticate reports whether the record may be used to log in.
func (p *Personal) CanAuthenticate() bool {
	return p != nil && p.Activo && p.DeletedAt == nil
}

// Comision returns the commission this staff member earns on amount, rounded to cents.
func (p *Personal) Comision(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.ComisionPorcentaje).Div(decimal.NewFromInt(100)).Round(2)
}
