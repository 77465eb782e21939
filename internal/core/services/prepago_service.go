package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/google/uuid"
)

type prepagoService struct {
	BaseService
	prepagoRepo portsrepo.PrepagoRepositoryFacade
	clienteRepo portsrepo.ClienteRepositoryFacade
	cajaRepo    portsrepo.CajaRepositoryFacade
}

// NewPrepagoService creates a new prepago service.
func NewPrepagoService(
	prepagoRepo portsrepo.PrepagoRepositoryFacade,
	clienteRepo portsrepo.ClienteRepositoryFacade,
	cajaRepo portsrepo.CajaRepositoryFacade,
	base BaseService,
) portssvc.PrepagoSvcFacade {
	return &prepagoService{
		BaseService: base,
		prepagoRepo: prepagoRepo,
		clienteRepo: clienteRepo,
		cajaRepo:    cajaRepo,
	}
}

func (s *prepagoService) CreatePrepago(ctx context.Context, req dto.CreatePrepagoRequest, actorID string) (*dto.PrepagoResponse, error) {
	if err := validateMoneyInputs(req.Monto, req.Moneda, req.MetodoPago); err != nil {
		return nil, err
	}
	if _, err := s.clienteRepo.FindClienteByID(ctx, req.ClienteID); err != nil {
		return nil, fmt.Errorf("failed to get cliente: %w", err)
	}
	if _, err := requireActiveCaja(ctx, s.cajaRepo, req.CajaID); err != nil {
		return nil, err
	}

	now := s.Now()
	fecha := now
	if req.Fecha != nil {
		fecha = req.Fecha.In(now.Location())
	}
	p := domain.Prepago{
		PrepagoID:   uuid.NewString(),
		ClienteID:   req.ClienteID,
		CajaID:      req.CajaID,
		Monto:       req.Monto,
		Moneda:      domain.Moneda(req.Moneda),
		MetodoPago:  domain.MetodoPago(req.MetodoPago),
		Comentario:  strings.TrimSpace(req.Comentario),
		Fecha:       fecha,
		AuditFields: domain.NewAuditFields(actorID, now),
	}

	var guardado *domain.PrepagoGuardado
	if req.Guardar {
		guardado = &domain.PrepagoGuardado{
			PrepagoGuardadoID: uuid.NewString(),
			PrepagoID:         p.PrepagoID,
			ClienteID:         p.ClienteID,
			Monto:             p.Monto,
			Moneda:            p.Moneda,
			CreatedAt:         now,
		}
	}

	if err := s.prepagoRepo.SavePrepago(ctx, p, guardado); err != nil {
		s.LogError(ctx, err, "Failed to save prepago", map[string]any{"cliente_id": p.ClienteID})
		return nil, fmt.Errorf("failed to create prepago: %w", err)
	}
	s.LogInfo(ctx, "Prepago recorded", map[string]any{
		"prepago_id": p.PrepagoID,
		"moneda":     string(p.Moneda),
		"guardado":   guardado != nil,
	})
	return &dto.PrepagoResponse{Prepago: p, Guardado: guardado}, nil
}

func (s *prepagoService) GetPrepago(ctx context.Context, prepagoID string) (*domain.Prepago, error) {
	p, err := s.prepagoRepo.FindPrepagoByID(ctx, prepagoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get prepago: %w", err)
	}
	return p, nil
}

func (s *prepagoService) ListPrepagosByCliente(ctx context.Context, clienteID string) ([]domain.Prepago, error) {
	list, err := s.prepagoRepo.ListPrepagosByCliente(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prepagos: %w", err)
	}
	return list, nil
}

func (s *prepagoService) ListPrepagosDisponibles(ctx context.Context, clienteID string) ([]domain.PrepagoGuardado, error) {
	list, err := s.prepagoRepo.ListUnusedPrepagosGuardados(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved prepagos: %w", err)
	}
	return list, nil
}
