package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
)

type cajaService struct {
	BaseService
	cajaRepo portsrepo.CajaRepositoryFacade
}

// NewCajaService creates a new caja service.
func NewCajaService(cajaRepo portsrepo.CajaRepositoryFacade, base BaseService) portssvc.CajaSvcFacade {
	return &cajaService{BaseService: base, cajaRepo: cajaRepo}
}

func (s *cajaService) ListCajas(ctx context.Context) ([]domain.Caja, error) {
	cajas, err := s.cajaRepo.ListCajas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cajas: %w", err)
	}
	return cajas, nil
}

func (s *cajaService) GetCaja(ctx context.Context, cajaID string) (*domain.Caja, error) {
	c, err := s.cajaRepo.FindCajaByID(ctx, cajaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get caja: %w", err)
	}
	return c, nil
}

// GetBalance sums the movimientos of a caja in [desde, hasta).
func (s *cajaService) GetBalance(ctx context.Context, cajaID string, desde, hasta *time.Time) (*domain.CajaBalance, error) {
	if desde != nil && hasta != nil && !hasta.After(*desde) {
		return nil, fmt.Errorf("%w: hasta must be after desde", apperrors.ErrValidation)
	}
	if _, err := s.cajaRepo.FindCajaByID(ctx, cajaID); err != nil {
		return nil, fmt.Errorf("failed to get caja: %w", err)
	}
	b, err := s.cajaRepo.SumMovimientos(ctx, cajaID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}
	return b, nil
}

// requireActiveCaja loads the caja and rejects inactive ones.
func requireActiveCaja(ctx context.Context, repo portsrepo.CajaRepositoryFacade, cajaID string) (*domain.Caja, error) {
	c, err := repo.FindCajaByID(ctx, cajaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get caja: %w", err)
	}
	if !c.Activo {
		return nil, apperrors.NewConflictError(fmt.Sprintf("caja %s is not active", c.Nombre))
	}
	return c, nil
}
