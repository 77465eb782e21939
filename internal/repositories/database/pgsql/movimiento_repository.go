package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/SscSPs/comandas_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movimientoColumns = `movimiento_id, caja_id, personal_id, monto_ars, monto_usd, es_ingreso, metodo_pago,
	COALESCE(comentario, ''), fecha, created_at, created_by, last_updated_at, last_updated_by`

type PgxMovimientoRepository struct {
	BaseRepository
}

func newPgxMovimientoRepository(pool *pgxpool.Pool) portsrepo.MovimientoRepositoryFacade {
	return &PgxMovimientoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovimientoRepositoryFacade = (*PgxMovimientoRepository)(nil)

func scanMovimiento(row rowScanner) (*domain.Movimiento, error) {
	var m domain.Movimiento
	err := row.Scan(&m.MovimientoID, &m.CajaID, &m.PersonalID, &m.MontoARS, &m.MontoUSD, &m.EsIngreso, &m.MetodoPago,
		&m.Comentario, &m.Fecha, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMovimientoRepository) SaveMovimiento(ctx context.Context, m domain.Movimiento) error {
	query := `
		INSERT INTO movimientos (movimiento_id, caja_id, personal_id, monto_ars, monto_usd, es_ingreso, metodo_pago,
			comentario, fecha, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MovimientoID, m.CajaID, m.PersonalID, m.MontoARS, m.MontoUSD, m.EsIngreso, m.MetodoPago,
		m.Comentario, m.Fecha, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "failed to save movimiento")
}

func (r *PgxMovimientoRepository) FindMovimientoByID(ctx context.Context, movimientoID string) (*domain.Movimiento, error) {
	m, err := scanMovimiento(r.Pool.QueryRow(ctx,
		`SELECT `+movimientoColumns+` FROM movimientos WHERE movimiento_id = $1;`, movimientoID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find movimiento %s", movimientoID))
	}
	return m, nil
}

// ListMovimientos uses keyset pagination on (fecha, movimiento_id) so pages stay stable while
// new entries are recorded.
func (r *PgxMovimientoRepository) ListMovimientos(ctx context.Context, filter domain.MovimientoFilter) ([]domain.Movimiento, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	where := []string{"caja_id = $1"}
	args := []any{filter.CajaID}
	if filter.Desde != nil {
		args = append(args, *filter.Desde)
		where = append(where, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if filter.Hasta != nil {
		args = append(args, *filter.Hasta)
		where = append(where, fmt.Sprintf("fecha < $%d", len(args)))
	}
	if filter.AfterFecha != nil && filter.AfterID != "" {
		args = append(args, *filter.AfterFecha, filter.AfterID)
		where = append(where, fmt.Sprintf("(fecha, movimiento_id) < ($%d, $%d::uuid)", len(args)-1, len(args)))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM movimientos
		WHERE %s
		ORDER BY fecha DESC, movimiento_id DESC
		LIMIT $%d;`,
		movimientoColumns, strings.Join(where, " AND "), len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movimientos: %w", err)
	}
	defer rows.Close()

	out := []domain.Movimiento{}
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movimiento row: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movimiento rows: %w", err)
	}
	return out, nil
}

func (r *PgxMovimientoRepository) DeleteMovimiento(ctx context.Context, movimientoID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM movimientos WHERE movimiento_id = $1;`, movimientoID)
	if err != nil {
		return mapError(err, "failed to delete movimiento")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("movimiento not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
