package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prepago is a deposit paid by a cliente ahead of a comanda.
type Prepago struct {
	PrepagoID  string          `json:"prepagoID"`
	ClienteID  string          `json:"clienteID"`
	CajaID     string          `json:"cajaID"`
	Monto      decimal.Decimal `json:"monto"`
	Moneda     Moneda          `json:"moneda"`
	MetodoPago MetodoPago      `json:"metodoPago"`
	Comentario string          `json:"comentario,omitempty"`
	Fecha      time.Time       `json:"fecha"`
	AuditFields
}

// PrepagoGuardado is a saved prepago that a later comanda can consume exactly once.
type PrepagoGuardado struct {
	PrepagoGuardadoID string          `json:"prepagoGuardadoID"`
	PrepagoID         string          `json:"prepagoID"`
	ClienteID         string          `json:"clienteID"`
	Monto             decimal.Decimal `json:"monto"`
	Moneda            Moneda          `json:"moneda"`
	ComandaID         *string         `json:"comandaID,omitempty"`
	UsadoAt           *time.Time      `json:"usadoAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Usado reports whether the saved prepago was already applied to a comanda.
func (g *PrepagoGuardado) Usado() bool {
	return g.ComandaID != nil
}
