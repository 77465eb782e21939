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

// cotizacionService provides business logic for dollar rate snapshots.
type cotizacionService struct {
	BaseService
	cotizacionRepo portsrepo.CotizacionRepositoryFacade
}

// NewCotizacionService creates a new cotizacion service.
func NewCotizacionService(cotizacionRepo portsrepo.CotizacionRepositoryFacade, base BaseService) portssvc.CotizacionSvcFacade {
	return &cotizacionService{BaseService: base, cotizacionRepo: cotizacionRepo}
}

func (s *cotizacionService) CreateCotizacion(ctx context.Context, req dto.CreateCotizacionRequest, actorID string) (*domain.CotizacionDolar, error) {
	now := s.Now()
	fecha := now
	if req.Fecha != nil {
		fecha = req.Fecha.In(now.Location())
	}
	c := domain.CotizacionDolar{
		CotizacionID: uuid.NewString(),
		Compra:       req.Compra,
		Venta:        req.Venta,
		Fuente:       strings.TrimSpace(req.Fuente),
		Fecha:        fecha,
		AuditFields:  domain.NewAuditFields(actorID, now),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.cotizacionRepo.SaveCotizacion(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create cotizacion: %w", err)
	}
	s.LogInfo(ctx, "Cotizacion recorded", map[string]any{"venta": c.Venta.String(), "fuente": c.Fuente})
	return &c, nil
}

func (s *cotizacionService) GetLatestCotizacion(ctx context.Context) (*domain.CotizacionDolar, error) {
	c, err := s.cotizacionRepo.FindLatestCotizacion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest cotizacion: %w", err)
	}
	return c, nil
}

func (s *cotizacionService) ListCotizaciones(ctx context.Context, params dto.ListCotizacionesParams) ([]domain.CotizacionDolar, error) {
	list, err := s.cotizacionRepo.ListCotizaciones(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cotizaciones: %w", err)
	}
	return list, nil
}

func (s *cotizacionService) Convert(ctx context.Context, params dto.ConvertParams) (*dto.ConvertResponse, error) {
	c, err := s.GetLatestCotizacion(ctx)
	if err != nil {
		return nil, err
	}
	from, to := domain.Moneda(params.De), domain.Moneda(params.A)
	return &dto.ConvertResponse{
		Monto:      params.Monto,
		De:         from,
		A:          to,
		Resultado:  c.Convert(params.Monto, from, to),
		Cotizacion: *c,
	}, nil
}
