package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cotizacionColumns = `cotizacion_id, compra, venta, fuente, fecha, created_at, created_by, last_updated_at, last_updated_by`

type PgxCotizacionRepository struct {
	BaseRepository
}

func newPgxCotizacionRepository(pool *pgxpool.Pool) portsrepo.CotizacionRepositoryFacade {
	return &PgxCotizacionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CotizacionRepositoryFacade = (*PgxCotizacionRepository)(nil)

func scanCotizacion(row rowScanner) (*domain.CotizacionDolar, error) {
	var c domain.CotizacionDolar
	err := row.Scan(&c.CotizacionID, &c.Compra, &c.Venta, &c.Fuente, &c.Fecha,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCotizacionRepository) SaveCotizacion(ctx context.Context, c domain.CotizacionDolar) error {
	query := `
		INSERT INTO cotizaciones_dolar (` + cotizacionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		c.CotizacionID, c.Compra, c.Venta, c.Fuente, c.Fecha,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	return mapError(err, "failed to save cotizacion")
}

func (r *PgxCotizacionRepository) FindLatestCotizacion(ctx context.Context) (*domain.CotizacionDolar, error) {
	query := `SELECT ` + cotizacionColumns + ` FROM cotizaciones_dolar ORDER BY fecha DESC, created_at DESC LIMIT 1;`
	c, err := scanCotizacion(r.Pool.QueryRow(ctx, query))
	if err != nil {
		return nil, mapError(err, "failed to find latest cotizacion")
	}
	return c, nil
}

func (r *PgxCotizacionRepository) ListCotizaciones(ctx context.Context, limit, offset int) ([]domain.CotizacionDolar, error) {
	limit, offset = normalizePage(limit, offset)
	query := `SELECT ` + cotizacionColumns + ` FROM cotizaciones_dolar ORDER BY fecha DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query cotizaciones: %w", err)
	}
	defer rows.Close()

	out := []domain.CotizacionDolar{}
	for rows.Next() {
		c, err := scanCotizacion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cotizacion row: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cotizacion rows: %w", err)
	}
	return out, nil
}
