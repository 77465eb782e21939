package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// CotizacionSvcFacade manages dollar rate snapshots.
type CotizacionSvcFacade interface {
	CreateCotizacion(ctx context.Context, req dto.CreateCotizacionRequest, actorID string) (*domain.CotizacionDolar, error)
	GetLatestCotizacion(ctx context.Context) (*domain.CotizacionDolar, error)
	ListCotizaciones(ctx context.Context, params dto.ListCotizacionesParams) ([]domain.CotizacionDolar, error)
	// Convert converts an amount between currencies at the latest venta rate.
	Convert(ctx context.Context, params dto.ConvertParams) (*dto.ConvertResponse, error)
}
