package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/google/uuid"
)

type clienteService struct {
	BaseService
	clienteRepo portsrepo.ClienteRepositoryFacade
}

// NewClienteService creates a new cliente service.
func NewClienteService(clienteRepo portsrepo.ClienteRepositoryFacade, base BaseService) portssvc.ClienteSvcFacade {
	return &clienteService{BaseService: base, clienteRepo: clienteRepo}
}

func (s *clienteService) CreateCliente(ctx context.Context, req dto.CreateClienteRequest, actorID string) (*domain.Cliente, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", apperrors.ErrValidation)
	}
	c := domain.Cliente{
		ClienteID:   uuid.NewString(),
		Nombre:      nombre,
		Telefono:    strings.TrimSpace(req.Telefono),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Instagram:   strings.TrimPrefix(strings.TrimSpace(req.Instagram), "@"),
		Notas:       req.Notas,
		AuditFields: domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.clienteRepo.SaveCliente(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create cliente: %w", err)
	}
	return &c, nil
}

func (s *clienteService) GetCliente(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	c, err := s.clienteRepo.FindClienteByID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente: %w", err)
	}
	return c, nil
}

func (s *clienteService) ListClientes(ctx context.Context, params dto.ListClientesParams) ([]domain.Cliente, error) {
	list, err := s.clienteRepo.ListClientes(ctx, domain.ClienteFilter{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}
	return list, nil
}

func (s *clienteService) UpdateCliente(ctx context.Context, clienteID string, req dto.UpdateClienteRequest, actorID string) (*domain.Cliente, error) {
	c, err := s.clienteRepo.FindClienteByID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente for update: %w", err)
	}
	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: nombre cannot be empty", apperrors.ErrValidation)
		}
		c.Nombre = nombre
	}
	if req.Telefono != nil {
		c.Telefono = strings.TrimSpace(*req.Telefono)
	}
	if req.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Instagram != nil {
		c.Instagram = strings.TrimPrefix(strings.TrimSpace(*req.Instagram), "@")
	}
	if req.Notas != nil {
		c.Notas = *req.Notas
	}
	c.Touch(actorID, s.Now())
	if err := s.clienteRepo.UpdateCliente(ctx, *c); err != nil {
		return nil, fmt.Errorf("failed to update cliente: %w", err)
	}
	return c, nil
}
