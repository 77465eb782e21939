package repositories

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// PrepagoReader defines read operations for prepagos
type PrepagoReader interface {
	FindPrepagoByID(ctx context.Context, prepagoID string) (*domain.Prepago, error)
	ListPrepagosByCliente(ctx context.Context, clienteID string) ([]domain.Prepago, error)
	FindPrepagoGuardadoByID(ctx context.Context, prepagoGuardadoID string) (*domain.PrepagoGuardado, error)
	ListUnusedPrepagosGuardados(ctx context.Context, clienteID string) ([]domain.PrepagoGuardado, error)
}

// PrepagoWriter defines write operations for prepagos
type PrepagoWriter interface {
	// SavePrepago persists the prepago and, when guardado is non-nil, its saved counterpart
	// in the same transaction.
	SavePrepago(ctx context.Context, prepago domain.Prepago, guardado *domain.PrepagoGuardado) error
}

// PrepagoRepositoryFacade combines all prepago repository interfaces
type PrepagoRepositoryFacade interface {
	PrepagoReader
	PrepagoWriter
}
