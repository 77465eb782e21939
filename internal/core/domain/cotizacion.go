package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CotizacionDolar is a recorded dollar exchange-rate snapshot.
type CotizacionDolar struct {
	CotizacionID string          `json:"cotizacionID"`
	Compra       decimal.Decimal `json:"compra"`
	Venta        decimal.Decimal `json:"venta"`
	Fuente       string          `json:"fuente"`
	Fecha        time.Time       `json:"fecha"`
	AuditFields
}

// Validate checks the rates of the snapshot.
func (c CotizacionDolar) Validate() error {
	if !c.Compra.IsPositive() {
		return fmt.Errorf("%w: compra must be positive", apperrors.ErrValidation)
	}
	if !c.Venta.IsPositive() {
		return fmt.Errorf("%w: venta must be positive", apperrors.ErrValidation)
	}
	if c.Venta.LessThan(c.Compra) {
		return fmt.Errorf("%w: venta cannot be lower than compra", apperrors.ErrValidation)
	}
	return nil
}

// ToPesos converts a dollar amount into pesos at the selling rate.
func (c CotizacionDolar) ToPesos(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.Venta).Round(2)
}

// ToDolares converts a peso amount into dollars at the selling rate.
func (c CotizacionDolar) ToDolares(ars decimal.Decimal) decimal.Decimal {
	if c.Venta.IsZero() {
		return decimal.Zero
	}
	return ars.DivRound(c.Venta, 2)
}

// Convert expresses amount (given in from) in the currency to.
func (c CotizacionDolar) Convert(amount decimal.Decimal, from, to Moneda) decimal.Decimal {
	switch {
	case from == to:
		return amount
	case from == MonedaDolares && to == MonedaPesos:
		return c.ToPesos(amount)
	default:
		return c.ToDolares(amount)
	}
}
