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
	"github.com/SscSPs/comandas_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type personalService struct {
	BaseService
	personalRepo portsrepo.PersonalRepositoryFacade
}

// NewPersonalService creates a new personnel service.
func NewPersonalService(personalRepo portsrepo.PersonalRepositoryFacade, base BaseService) portssvc.PersonalSvcFacade {
	return &personalService{BaseService: base, personalRepo: personalRepo}
}

func (s *personalService) CreatePersonal(ctx context.Context, req dto.CreatePersonalRequest, actorID string) (*domain.Personal, error) {
	rol := domain.Rol(req.Rol)
	if !rol.Valid() {
		return nil, fmt.Errorf("%w: unknown rol %q", apperrors.ErrValidation, req.Rol)
	}
	if err := validateComision(req.ComisionPorcentaje); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := s.Now()
	p := domain.Personal{
		PersonalID:         uuid.NewString(),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:       hash,
		Nombre:             strings.TrimSpace(req.Nombre),
		Rol:                rol,
		UnidadesNegocio:    normalizeUnidades(req.UnidadesNegocio),
		ComisionPorcentaje: req.ComisionPorcentaje,
		Activo:             true,
		AuditFields:        domain.NewAuditFields(actorID, now),
	}
	if err := s.personalRepo.SavePersonal(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to create personal", map[string]any{"email": p.Email})
		return nil, fmt.Errorf("failed to create personal: %w", err)
	}
	s.LogInfo(ctx, "Personal created", map[string]any{"personal_id": p.PersonalID, "rol": string(p.Rol)})
	return &p, nil
}

func (s *personalService) GetPersonal(ctx context.Context, personalID string) (*domain.Personal, error) {
	p, err := s.personalRepo.FindPersonalByID(ctx, personalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get personal: %w", err)
	}
	return p, nil
}

func (s *personalService) ListPersonal(ctx context.Context, params dto.ListPersonalParams) ([]domain.Personal, error) {
	list, err := s.personalRepo.ListPersonal(ctx, domain.PersonalFilter{
		IncludeInactive: params.IncludeInactive,
		Limit:           params.Limit,
		Offset:          params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list personal: %w", err)
	}
	return list, nil
}

func (s *personalService) UpdatePersonal(ctx context.Context, personalID string, req dto.UpdatePersonalRequest, actorID string) (*domain.Personal, error) {
	p, err := s.personalRepo.FindPersonalByID(ctx, personalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get personal for update: %w", err)
	}

	if req.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Nombre != nil {
		p.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Rol != nil {
		rol := domain.Rol(*req.Rol)
		if !rol.Valid() {
			return nil, fmt.Errorf("%w: unknown rol %q", apperrors.ErrValidation, *req.Rol)
		}
		p.Rol = rol
	}
	if req.UnidadesNegocio != nil {
		p.UnidadesNegocio = normalizeUnidades(*req.UnidadesNegocio)
	}
	if req.ComisionPorcentaje != nil {
		if err := validateComision(*req.ComisionPorcentaje); err != nil {
			return nil, err
		}
		p.ComisionPorcentaje = *req.ComisionPorcentaje
	}
	p.Touch(actorID, s.Now())

	if err := s.personalRepo.UpdatePersonal(ctx, *p); err != nil {
		return nil, fmt.Errorf("failed to update personal: %w", err)
	}
	return p, nil
}

func (s *personalService) SetPassword(ctx context.Context, personalID string, req dto.SetPasswordRequest, actorID string) error {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.personalRepo.UpdatePasswordHash(ctx, personalID, hash, s.Now(), actorID); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}
	s.LogInfo(ctx, "Password changed", map[string]any{"personal_id": personalID})
	return nil
}

func (s *personalService) DeactivatePersonal(ctx context.Context, personalID string, actorID string) error {
	if personalID == actorID {
		return apperrors.NewConflictError("cannot deactivate your own account")
	}
	if err := s.personalRepo.DeactivatePersonal(ctx, personalID, s.Now(), actorID); err != nil {
		return fmt.Errorf("failed to deactivate personal: %w", err)
	}
	s.LogInfo(ctx, "Personal deactivated", map[string]any{"personal_id": personalID})
	return nil
}

func validateComision(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: comision must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

// normalizeUnidades trims, drops empties and de-duplicates business units keeping their order.
func normalizeUnidades(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, u := range in {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
