package repositories

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// CotizacionReader defines read operations for dollar rate snapshots
type CotizacionReader interface {
	// FindLatestCotizacion returns the snapshot with the greatest fecha.
	FindLatestCotizacion(ctx context.Context) (*domain.CotizacionDolar, error)
	ListCotizaciones(ctx context.Context, limit, offset int) ([]domain.CotizacionDolar, error)
}

// CotizacionWriter defines write operations for dollar rate snapshots
type CotizacionWriter interface {
	SaveCotizacion(ctx context.Context, cotizacion domain.CotizacionDolar) error
}

// CotizacionRepositoryFacade combines all cotizacion repository interfaces
type CotizacionRepositoryFacade interface {
	CotizacionReader
	CotizacionWriter
}
