package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCajaRepository struct {
	BaseRepository
}

func newPgxCajaRepository(pool *pgxpool.Pool) portsrepo.CajaRepositoryFacade {
	return &PgxCajaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CajaRepositoryFacade = (*PgxCajaRepository)(nil)

func (r *PgxCajaRepository) FindCajaByID(ctx context.Context, cajaID string) (*domain.Caja, error) {
	query := `
		SELECT caja_id, nombre, activo, created_at, created_by, last_updated_at, last_updated_by
		FROM cajas
		WHERE caja_id = $1;
	`
	var c domain.Caja
	err := r.Pool.QueryRow(ctx, query, cajaID).Scan(
		&c.CajaID, &c.Nombre, &c.Activo, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find caja %s", cajaID))
	}
	return &c, nil
}

func (r *PgxCajaRepository) ListCajas(ctx context.Context) ([]domain.Caja, error) {
	query := `
		SELECT caja_id, nombre, activo, created_at, created_by, last_updated_at, last_updated_by
		FROM cajas
		ORDER BY nombre;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cajas: %w", err)
	}
	defer rows.Close()

	cajas := []domain.Caja{}
	for rows.Next() {
		var c domain.Caja
		if err := rows.Scan(&c.CajaID, &c.Nombre, &c.Activo, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan caja row: %w", err)
		}
		cajas = append(cajas, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating caja rows: %w", err)
	}
	return cajas, nil
}

func (r *PgxCajaRepository) SumMovimientos(ctx context.Context, cajaID string, desde, hasta *time.Time) (*domain.CajaBalance, error) {
	query := `
		SELECT
			COALESCE(SUM(monto_ars) FILTER (WHERE es_ingreso), 0),
			COALESCE(SUM(monto_ars) FILTER (WHERE NOT es_ingreso), 0),
			COALESCE(SUM(monto_usd) FILTER (WHERE es_ingreso), 0),
			COALESCE(SUM(monto_usd) FILTER (WHERE NOT es_ingreso), 0)
		FROM movimientos
		WHERE caja_id = $1
		  AND ($2::timestamptz IS NULL OR fecha >= $2)
		  AND ($3::timestamptz IS NULL OR fecha < $3);
	`
	b := domain.CajaBalance{CajaID: cajaID, Desde: desde, Hasta: hasta}
	err := r.Pool.QueryRow(ctx, query, cajaID, desde, hasta).Scan(
		&b.IngresosARS, &b.EgresosARS, &b.IngresosUSD, &b.EgresosUSD,
	)
	if err != nil {
		return nil, mapError(err, "failed to sum movimientos")
	}
	return &b, nil
}
