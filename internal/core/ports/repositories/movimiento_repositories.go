package repositories

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// MovimientoRepositoryFacade defines the persistence operations for movimientos.
type MovimientoRepositoryFacade interface {
	SaveMovimiento(ctx context.Context, movimiento domain.Movimiento) error
	FindMovimientoByID(ctx context.Context, movimientoID string) (*domain.Movimiento, error)
	// ListMovimientos returns at most filter.Limit rows in (fecha DESC, movimiento_id DESC) order.
	ListMovimientos(ctx context.Context, filter domain.MovimientoFilter) ([]domain.Movimiento, error)
	DeleteMovimiento(ctx context.Context, movimientoID string) error
}
