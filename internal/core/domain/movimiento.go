package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Movimiento is a ledger entry (income or expense) recorded against a caja.
type Movimiento struct {
	MovimientoID string          `json:"movimientoID"`
	CajaID       string          `json:"cajaID"`
	PersonalID   *string         `json:"personalID,omitempty"`
	MontoARS     decimal.Decimal `json:"montoARS"`
	MontoUSD     decimal.Decimal `json:"montoUSD"`
	EsIngreso    bool            `json:"esIngreso"`
	MetodoPago   MetodoPago      `json:"metodoPago"`
	Comentario   string          `json:"comentario,omitempty"`
	Fecha        time.Time       `json:"fecha"`
	AuditFields
}

// Validate checks the amounts and payment type of the entry.
func (m *Movimiento) Validate() error {
	if m.MontoARS.IsNegative() || m.MontoUSD.IsNegative() {
		return fmt.Errorf("%w: amounts cannot be negative", apperrors.ErrValidation)
	}
	if m.MontoARS.IsZero() && m.MontoUSD.IsZero() {
		return fmt.Errorf("%w: at least one amount must be positive", apperrors.ErrValidation)
	}
	if !m.MetodoPago.Valid() {
		return fmt.Errorf("%w: unknown metodo de pago %q", apperrors.ErrValidation, m.MetodoPago)
	}
	return nil
}
