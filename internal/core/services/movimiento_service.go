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
	"github.com/SscSPs/comandas_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

type movimientoService struct {
	BaseService
	movimientoRepo portsrepo.MovimientoRepositoryFacade
	cajaRepo       portsrepo.CajaRepositoryFacade
}

// NewMovimientoService creates a new movimiento service.
func NewMovimientoService(movimientoRepo portsrepo.MovimientoRepositoryFacade, cajaRepo portsrepo.CajaRepositoryFacade, base BaseService) portssvc.MovimientoSvcFacade {
	return &movimientoService{BaseService: base, movimientoRepo: movimientoRepo, cajaRepo: cajaRepo}
}

func (s *movimientoService) CreateMovimiento(ctx context.Context, req dto.CreateMovimientoRequest, actorID string) (*domain.Movimiento, error) {
	if req.EsIngreso == nil {
		return nil, fmt.Errorf("%w: esIngreso is required", apperrors.ErrValidation)
	}
	if _, err := requireActiveCaja(ctx, s.cajaRepo, req.CajaID); err != nil {
		return nil, err
	}

	now := s.Now()
	fecha := now
	if req.Fecha != nil {
		fecha = req.Fecha.In(now.Location())
	}
	m := domain.Movimiento{
		MovimientoID: uuid.NewString(),
		CajaID:       req.CajaID,
		PersonalID:   req.PersonalID,
		MontoARS:     req.MontoARS,
		MontoUSD:     req.MontoUSD,
		EsIngreso:    *req.EsIngreso,
		MetodoPago:   domain.MetodoPago(req.MetodoPago),
		Comentario:   strings.TrimSpace(req.Comentario),
		Fecha:        fecha,
		AuditFields:  domain.NewAuditFields(actorID, now),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.movimientoRepo.SaveMovimiento(ctx, m); err != nil {
		s.LogError(ctx, err, "Failed to save movimiento", map[string]any{"caja_id": m.CajaID})
		return nil, fmt.Errorf("failed to create movimiento: %w", err)
	}
	s.LogInfo(ctx, "Movimiento recorded", map[string]any{
		"movimiento_id": m.MovimientoID,
		"es_ingreso":    m.EsIngreso,
	})
	return &m, nil
}

func (s *movimientoService) GetMovimiento(ctx context.Context, movimientoID string) (*domain.Movimiento, error) {
	m, err := s.movimientoRepo.FindMovimientoByID(ctx, movimientoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movimiento: %w", err)
	}
	return m, nil
}

// ListMovimientos returns one page of a caja's movimientos, newest first. One extra row is
// fetched to know whether a next page exists.
func (s *movimientoService) ListMovimientos(ctx context.Context, cajaID string, params dto.ListMovimientosParams) (*domain.MovimientoPage, error) {
	if params.Desde != nil && params.Hasta != nil && !params.Hasta.After(*params.Desde) {
		return nil, fmt.Errorf("%w: hasta must be after desde", apperrors.ErrValidation)
	}
	if _, err := s.cajaRepo.FindCajaByID(ctx, cajaID); err != nil {
		return nil, fmt.Errorf("failed to get caja: %w", err)
	}

	limit := pagination.NormalizeLimit(params.Limit)
	filter := domain.MovimientoFilter{
		CajaID: cajaID,
		Desde:  params.Desde,
		Hasta:  params.Hasta,
		Limit:  limit + 1,
	}
	if params.PageToken != "" {
		cursor, err := pagination.DecodeToken(params.PageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if _, err := uuid.Parse(cursor.ID); err != nil {
			return nil, fmt.Errorf("%w: invalid pagination token id", apperrors.ErrValidation)
		}
		filter.AfterFecha = &cursor.Fecha
		filter.AfterID = cursor.ID
	}

	rows, err := s.movimientoRepo.ListMovimientos(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movimientos: %w", err)
	}

	page := &domain.MovimientoPage{Movimientos: rows}
	if len(rows) > limit {
		page.Movimientos = rows[:limit]
		last := page.Movimientos[limit-1]
		page.NextPageToken = pagination.EncodeToken(last.Fecha, last.MovimientoID)
	}
	return page, nil
}

func (s *movimientoService) DeleteMovimiento(ctx context.Context, movimientoID string, actorID string) error {
	if err := s.movimientoRepo.DeleteMovimiento(ctx, movimientoID); err != nil {
		return fmt.Errorf("failed to delete movimiento: %w", err)
	}
	s.LogInfo(ctx, "Movimiento deleted", map[string]any{"movimiento_id": movimientoID, "deleted_by": actorID})
	return nil
}
