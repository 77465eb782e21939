package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// ClienteSvcFacade manages clientes.
type ClienteSvcFacade interface {
	CreateCliente(ctx context.Context, req dto.CreateClienteRequest, actorID string) (*domain.Cliente, error)
	GetCliente(ctx context.Context, clienteID string) (*domain.Cliente, error)
	ListClientes(ctx context.Context, params dto.ListClientesParams) ([]domain.Cliente, error)
	UpdateCliente(ctx context.Context, clienteID string, req dto.UpdateClienteRequest, actorID string) (*domain.Cliente, error)
}
