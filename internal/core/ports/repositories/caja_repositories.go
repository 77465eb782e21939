package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// CajaRepositoryFacade defines the persistence operations for cash registers.
type CajaRepositoryFacade interface {
	FindCajaByID(ctx context.Context, cajaID string) (*domain.Caja, error)
	ListCajas(ctx context.Context) ([]domain.Caja, error)
	// SumMovimientos totals ingresos and egresos per currency. Nil bounds are open.
	SumMovimientos(ctx context.Context, cajaID string, desde, hasta *time.Time) (*domain.CajaBalance, error)
}
