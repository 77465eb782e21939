package services

import (
	"fmt"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// validateMoneyInputs re-checks what the binding layer already enforces, for callers that skip it.
func validateMoneyInputs(monto decimal.Decimal, moneda, metodo string) error {
	if !monto.IsPositive() {
		return fmt.Errorf("%w: monto must be positive", apperrors.ErrValidation)
	}
	if !domain.Moneda(moneda).Valid() {
		return fmt.Errorf("%w: unknown moneda %q", apperrors.ErrValidation, moneda)
	}
	if !domain.MetodoPago(metodo).Valid() {
		return fmt.Errorf("%w: unknown metodo de pago %q", apperrors.ErrValidation, metodo)
	}
	return nil
}
