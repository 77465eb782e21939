package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// ComandaReaderSvc defines read operations for comandas
type ComandaReaderSvc interface {
	GetComanda(ctx context.Context, comandaID string) (*domain.Comanda, error)
	ListComandas(ctx context.Context, params dto.ListComandasParams) ([]domain.Comanda, error)
	ResumenComisiones(ctx context.Context, params dto.ComisionesParams) (*domain.ComisionResumen, error)
}

// ComandaWriterSvc defines write operations for comandas
type ComandaWriterSvc interface {
	CreateComanda(ctx context.Context, req dto.CreateComandaRequest, actorID string) (*domain.Comanda, error)
	UpdateComanda(ctx context.Context, comandaID string, req dto.UpdateComandaRequest, actorID string) (*domain.Comanda, error)
	DeleteComanda(ctx context.Context, comandaID string, actorID string) error
}

// ComandaSvcFacade combines all comanda service interfaces
type ComandaSvcFacade interface {
	ComandaReaderSvc
	ComandaWriterSvc
}
