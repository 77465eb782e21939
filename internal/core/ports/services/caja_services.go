package services

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// CajaSvcFacade exposes the cash registers and their balances.
type CajaSvcFacade interface {
	ListCajas(ctx context.Context) ([]domain.Caja, error)
	GetCaja(ctx context.Context, cajaID string) (*domain.Caja, error)
	GetBalance(ctx context.Context, cajaID string, desde, hasta *time.Time) (*domain.CajaBalance, error)
}
