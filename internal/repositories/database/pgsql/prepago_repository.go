package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const prepagoColumns = `prepago_id, cliente_id, caja_id, monto, moneda, metodo_pago, COALESCE(comentario, ''), fecha,
	created_at, created_by, last_updated_at, last_updated_by`

const prepagoGuardadoColumns = `prepago_guardado_id, prepago_id, cliente_id, monto, moneda, comanda_id, usado_at, created_at`

type PgxPrepagoRepository struct {
	BaseRepository
}

func newPgxPrepagoRepository(pool *pgxpool.Pool) portsrepo.PrepagoRepositoryFacade {
	return &PgxPrepagoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PrepagoRepositoryFacade = (*PgxPrepagoRepository)(nil)

func scanPrepago(row rowScanner) (*domain.Prepago, error) {
	var p domain.Prepago
	err := row.Scan(&p.PrepagoID, &p.ClienteID, &p.CajaID, &p.Monto, &p.Moneda, &p.MetodoPago, &p.Comentario, &p.Fecha,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPrepagoGuardado(row rowScanner) (*domain.PrepagoGuardado, error) {
	var g domain.PrepagoGuardado
	err := row.Scan(&g.PrepagoGuardadoID, &g.PrepagoID, &g.ClienteID, &g.Monto, &g.Moneda, &g.ComandaID, &g.UsadoAt, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PgxPrepagoRepository) SavePrepago(ctx context.Context, p domain.Prepago, guardado *domain.PrepagoGuardado) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	_, err = tx.Exec(ctx, `
		INSERT INTO prepagos (prepago_id, cliente_id, caja_id, monto, moneda, metodo_pago, comentario, fecha,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12);`,
		p.PrepagoID, p.ClienteID, p.CajaID, p.Monto, p.Moneda, p.MetodoPago, p.Comentario, p.Fecha,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "failed to save prepago")
	}

	if guardado != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO prepagos_guardados (prepago_guardado_id, prepago_id, cliente_id, monto, moneda, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			guardado.PrepagoGuardadoID, guardado.PrepagoID, guardado.ClienteID, guardado.Monto, guardado.Moneda, guardado.CreatedAt,
		)
		if err != nil {
			return mapError(err, "failed to save prepago guardado")
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPrepagoRepository) FindPrepagoByID(ctx context.Context, prepagoID string) (*domain.Prepago, error) {
	p, err := scanPrepago(r.Pool.QueryRow(ctx, `SELECT `+prepagoColumns+` FROM prepagos WHERE prepago_id = $1;`, prepagoID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find prepago %s", prepagoID))
	}
	return p, nil
}

func (r *PgxPrepagoRepository) ListPrepagosByCliente(ctx context.Context, clienteID string) ([]domain.Prepago, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+prepagoColumns+` FROM prepagos WHERE cliente_id = $1 ORDER BY fecha DESC, prepago_id;`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prepagos: %w", err)
	}
	defer rows.Close()

	out := []domain.Prepago{}
	for rows.Next() {
		p, err := scanPrepago(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prepago row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prepago rows: %w", err)
	}
	return out, nil
}

func (r *PgxPrepagoRepository) FindPrepagoGuardadoByID(ctx context.Context, prepagoGuardadoID string) (*domain.PrepagoGuardado, error) {
	g, err := scanPrepagoGuardado(r.Pool.QueryRow(ctx,
		`SELECT `+prepagoGuardadoColumns+` FROM prepagos_guardados WHERE prepago_guardado_id = $1;`, prepagoGuardadoID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find prepago guardado %s", prepagoGuardadoID))
	}
	return g, nil
}

func (r *PgxPrepagoRepository) ListUnusedPrepagosGuardados(ctx context.Context, clienteID string) ([]domain.PrepagoGuardado, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+prepagoGuardadoColumns+`
		FROM prepagos_guardados
		WHERE cliente_id = $1 AND comanda_id IS NULL
		ORDER BY created_at, prepago_guardado_id;`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prepagos guardados: %w", err)
	}
	return collectPrepagosGuardados(rows)
}

func collectPrepagosGuardados(rows pgx.Rows) ([]domain.PrepagoGuardado, error) {
	defer rows.Close()
	out := []domain.PrepagoGuardado{}
	for rows.Next() {
		g, err := scanPrepagoGuardado(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prepago guardado row: %w", err)
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prepago guardado rows: %w", err)
	}
	return out, nil
}
