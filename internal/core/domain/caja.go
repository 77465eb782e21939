package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CajaNombre identifies one of the physical cash registers.
type CajaNombre string

const (
	Caja1 CajaNombre = "caja_1"
	Caja2 CajaNombre = "caja_2"
)

// Valid reports whether n names a known register.
func (n CajaNombre) Valid() bool {
	return n == Caja1 || n == Caja2
}

// Caja is a cash register used to partition cash flow.
type Caja struct {
	CajaID string     `json:"cajaID"`
	Nombre CajaNombre `json:"nombre"`
	Activo bool       `json:"activo"`
	AuditFields
}

// CajaBalance is the per-currency reconciliation of a caja over a period.
type CajaBalance struct {
	CajaID      string          `json:"cajaID"`
	Desde       *time.Time      `json:"desde,omitempty"`
	Hasta       *time.Time      `json:"hasta,omitempty"`
	IngresosARS decimal.Decimal `json:"ingresosARS"`
	EgresosARS  decimal.Decimal `json:"egresosARS"`
	IngresosUSD decimal.Decimal `json:"ingresosUSD"`
	EgresosUSD  decimal.Decimal `json:"egresosUSD"`
}

// SaldoARS is ingresos minus egresos in pesos.
func (b CajaBalance) SaldoARS() decimal.Decimal {
	return b.IngresosARS.Sub(b.EgresosARS)
}

// SaldoUSD is ingresos minus egresos in dollars.
func (b CajaBalance) SaldoUSD() decimal.Decimal {
	return b.IngresosUSD.Sub(b.EgresosUSD)
}
