package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComandaServiceDeps groups the repositories a comanda service reads from.
type ComandaServiceDeps struct {
	Comandas     portsrepo.ComandaRepositoryFacade
	Clientes     portsrepo.ClienteRepositoryFacade
	Personal     portsrepo.PersonalReader
	Cajas        portsrepo.CajaRepositoryFacade
	Cotizaciones portsrepo.CotizacionReader
	Prepagos     portsrepo.PrepagoReader
}

type comandaService struct {
	BaseService
	deps ComandaServiceDeps
}

// NewComandaService creates a new comanda service.
func NewComandaService(deps ComandaServiceDeps, base BaseService) portssvc.ComandaSvcFacade {
	return &comandaService{BaseService: base, deps: deps}
}

func (s *comandaService) CreateComanda(ctx context.Context, req dto.CreateComandaRequest, actorID string) (*domain.Comanda, error) {
	if _, err := s.deps.Clientes.FindClienteByID(ctx, req.ClienteID); err != nil {
		return nil, fmt.Errorf("failed to get cliente: %w", err)
	}
	if _, err := s.deps.Personal.FindActivePersonalByID(ctx, req.PersonalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("personal not found or inactive")
		}
		return nil, fmt.Errorf("failed to get personal: %w", err)
	}
	if _, err := requireActiveCaja(ctx, s.deps.Cajas, req.CajaID); err != nil {
		return nil, err
	}

	valorDolar, err := s.resolveValorDolar(ctx, req.ValorDolar)
	if err != nil {
		return nil, err
	}
	numero, err := s.resolveNumero(ctx, req.Numero)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	fecha := now
	if req.Fecha != nil {
		fecha = req.Fecha.In(now.Location())
	}
	c := domain.Comanda{
		ComandaID:   uuid.NewString(),
		Numero:      numero,
		Fecha:       fecha,
		ClienteID:   req.ClienteID,
		PersonalID:  req.PersonalID,
		CajaID:      req.CajaID,
		Moneda:      domain.Moneda(req.Moneda),
		ValorDolar:  valorDolar,
		Total:       req.Total,
		MetodoPago:  domain.MetodoPago(req.MetodoPago),
		Descripcion: strings.TrimSpace(req.Descripcion),
		Estado:      domain.ComandaPendiente,
		AuditFields: domain.NewAuditFields(actorID, now),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ars, err := s.loadPrepago(ctx, req.PrepagoARSID, req.ClienteID, domain.MonedaPesos)
	if err != nil {
		return nil, err
	}
	usd, err := s.loadPrepago(ctx, req.PrepagoUSDID, req.ClienteID, domain.MonedaDolares)
	if err != nil {
		return nil, err
	}
	c.ApplyPrepagos(ars, usd)

	if err := s.deps.Comandas.SaveComanda(ctx, c); err != nil {
		s.LogError(ctx, err, "Failed to save comanda", map[string]any{"cliente_id": c.ClienteID})
		return nil, fmt.Errorf("failed to create comanda: %w", err)
	}
	s.LogInfo(ctx, "Comanda created", map[string]any{
		"comanda_id": c.ComandaID,
		"numero":     c.Numero,
		"saldo":      c.Saldo.String(),
	})
	return &c, nil
}

// resolveValorDolar snapshots the latest venta rate when the request omits one.
func (s *comandaService) resolveValorDolar(ctx context.Context, requested *decimal.Decimal) (decimal.Decimal, error) {
	if requested != nil {
		return *requested, nil
	}
	latest, err := s.deps.Cotizaciones.FindLatestCotizacion(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.NewValidationError("valorDolar is required while no cotizacion is recorded")
		}
		return decimal.Zero, fmt.Errorf("failed to get latest cotizacion: %w", err)
	}
	return latest.Venta, nil
}

func (s *comandaService) resolveNumero(ctx context.Context, requested *int64) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	n, err := s.deps.Comandas.NextNumero(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get next comanda numero: %w", err)
	}
	return n, nil
}

// loadPrepago checks a referenced prepago guardado up front. The repository re-checks it
// under a row lock when the comanda is saved.
func (s *comandaService) loadPrepago(ctx context.Context, id *string, clienteID string, moneda domain.Moneda) (*domain.PrepagoGuardado, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	g, err := s.deps.Prepagos.FindPrepagoGuardadoByID(ctx, *id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("prepago guardado %s not found", *id))
		}
		return nil, fmt.Errorf("failed to get prepago guardado: %w", err)
	}
	switch {
	case g.ClienteID != clienteID:
		return nil, apperrors.NewConflictError("prepago guardado belongs to another cliente")
	case g.Moneda != moneda:
		return nil, apperrors.NewConflictError(fmt.Sprintf("prepago guardado is in %s, expected %s", g.Moneda, moneda))
	case g.Usado():
		return nil, apperrors.NewConflictError("prepago guardado was already used")
	}
	return g, nil
}

func (s *comandaService) GetComanda(ctx context.Context, comandaID string) (*domain.Comanda, error) {
	c, err := s.deps.Comandas.FindComandaByID(ctx, comandaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comanda: %w", err)
	}
	return c, nil
}

func (s *comandaService) ListComandas(ctx context.Context, params dto.ListComandasParams) ([]domain.Comanda, error) {
	if params.Desde != nil && params.Hasta != nil && !params.Hasta.After(*params.Desde) {
		return nil, fmt.Errorf("%w: hasta must be after desde", apperrors.ErrValidation)
	}
	list, err := s.deps.Comandas.ListComandas(ctx, domain.ComandaFilter{
		Desde:      params.Desde,
		Hasta:      params.Hasta,
		PersonalID: params.PersonalID,
		CajaID:     params.CajaID,
		ClienteID:  params.ClienteID,
		Estado:     domain.EstadoComanda(params.Estado),
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list comandas: %w", err)
	}
	return list, nil
}

// ResumenComisiones walks every pagada comanda of the personal in the period and totals
// the commission at the personal's current percentage.
func (s *comandaService) ResumenComisiones(ctx context.Context, params dto.ComisionesParams) (*domain.ComisionResumen, error) {
	if params.Desde != nil && params.Hasta != nil && !params.Hasta.After(*params.Desde) {
		return nil, fmt.Errorf("%w: hasta must be after desde", apperrors.ErrValidation)
	}
	p, err := s.deps.Personal.FindPersonalByID(ctx, params.PersonalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get personal: %w", err)
	}

	resumen := &domain.ComisionResumen{
		PersonalID: p.PersonalID,
		Porcentaje: p.ComisionPorcentaje,
		Desde:      params.Desde,
		Hasta:      params.Hasta,
	}
	filter := domain.ComandaFilter{
		Desde:      params.Desde,
		Hasta:      params.Hasta,
		PersonalID: p.PersonalID,
		Estado:     domain.ComandaPagada,
		Limit:      pagination.MaxLimit,
	}
	for {
		page, err := s.deps.Comandas.ListComandas(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list comandas for comisiones: %w", err)
		}
		for i := range page {
			resumen.Add(&page[i], p)
		}
		if len(page) < filter.Limit {
			break
		}
		filter.Offset += len(page)
	}
	s.LogDebug(ctx, "Comisiones computed", map[string]any{"personal_id": p.PersonalID, "comandas": resumen.Comandas})
	return resumen, nil
}

func (s *comandaService) UpdateComanda(ctx context.Context, comandaID string, req dto.UpdateComandaRequest, actorID string) (*domain.Comanda, error) {
	c, err := s.deps.Comandas.FindComandaByID(ctx, comandaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comanda for update: %w", err)
	}
	if req.Descripcion != nil {
		c.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.Estado != nil {
		next := domain.EstadoComanda(*req.Estado)
		if err := checkTransition(c.Estado, next); err != nil {
			return nil, err
		}
		c.Estado = next
		if next == domain.ComandaPagada {
			c.Saldo = decimal.Zero
		}
	}
	c.Touch(actorID, s.Now())
	if err := s.deps.Comandas.UpdateComanda(ctx, *c); err != nil {
		return nil, fmt.Errorf("failed to update comanda: %w", err)
	}
	return c, nil
}

// checkTransition allows pendiente to move anywhere, pagada only to anulada, and keeps anulada final.
func checkTransition(from, to domain.EstadoComanda) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown estado %q", apperrors.ErrValidation, to)
	}
	if from == to {
		return nil
	}
	switch from {
	case domain.ComandaPendiente:
		return nil
	case domain.ComandaPagada:
		if to == domain.ComandaAnulada {
			return nil
		}
	}
	return apperrors.NewConflictError(fmt.Sprintf("comanda cannot move from %s to %s", from, to))
}

func (s *comandaService) DeleteComanda(ctx context.Context, comandaID string, actorID string) error {
	if err := s.deps.Comandas.MarkComandaDeleted(ctx, comandaID, s.Now(), actorID); err != nil {
		return fmt.Errorf("failed to delete comanda: %w", err)
	}
	s.LogInfo(ctx, "Comanda deleted", map[string]any{"comanda_id": comandaID})
	return nil
}
