package repositories

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// ClienteRepositoryFacade defines the persistence operations for clientes.
type ClienteRepositoryFacade interface {
	SaveCliente(ctx context.Context, cliente domain.Cliente) error
	FindClienteByID(ctx context.Context, clienteID string) (*domain.Cliente, error)
	ListClientes(ctx context.Context, filter domain.ClienteFilter) ([]domain.Cliente, error)
	UpdateCliente(ctx context.Context, cliente domain.Cliente) error
}
