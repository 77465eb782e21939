package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// ComandaReader defines read operations for comandas
type ComandaReader interface {
	FindComandaByID(ctx context.Context, comandaID string) (*domain.Comanda, error)
	ListComandas(ctx context.Context, filter domain.ComandaFilter) ([]domain.Comanda, error)
	// NextNumero suggests the next display number. Numbers are not unique.
	NextNumero(ctx context.Context) (int64, error)
}

// ComandaWriter defines write operations for comandas
type ComandaWriter interface {
	// SaveComanda inserts the comanda and marks every referenced prepago guardado as used by it,
	// atomically. A referenced prepago that is already used, belongs to another cliente or has a
	// different currency yields apperrors.ErrConflict and nothing is written.
	SaveComanda(ctx context.Context, comanda domain.Comanda) error
	UpdateComanda(ctx context.Context, comanda domain.Comanda) error
	MarkComandaDeleted(ctx context.Context, comandaID string, deletedAt time.Time, deletedBy string) error
}

// ComandaRepositoryFacade combines all comanda repository interfaces
type ComandaRepositoryFacade interface {
	ComandaReader
	ComandaWriter
}

// ComandaRepositoryWithTx extends ComandaRepositoryFacade with transaction capabilities
type ComandaRepositoryWithTx interface {
	ComandaRepositoryFacade
	TransactionManager
}
