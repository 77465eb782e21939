package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// PrepagoSvcFacade manages deposits and their saved counterparts.
type PrepagoSvcFacade interface {
	CreatePrepago(ctx context.Context, req dto.CreatePrepagoRequest, actorID string) (*dto.PrepagoResponse, error)
	GetPrepago(ctx context.Context, prepagoID string) (*domain.Prepago, error)
	ListPrepagosByCliente(ctx context.Context, clienteID string) ([]domain.Prepago, error)
	// ListPrepagosDisponibles lists the saved prepagos of a cliente no comanda has used yet.
	ListPrepagosDisponibles(ctx context.Context, clienteID string) ([]domain.PrepagoGuardado, error)
}
