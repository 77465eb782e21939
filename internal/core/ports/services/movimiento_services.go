package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// MovimientoSvcFacade manages the ledger entries of the cajas.
type MovimientoSvcFacade interface {
	CreateMovimiento(ctx context.Context, req dto.CreateMovimientoRequest, actorID string) (*domain.Movimiento, error)
	GetMovimiento(ctx context.Context, movimientoID string) (*domain.Movimiento, error)
	ListMovimientos(ctx context.Context, cajaID string, params dto.ListMovimientosParams) (*domain.MovimientoPage, error)
	DeleteMovimiento(ctx context.Context, movimientoID string, actorID string) error
}
