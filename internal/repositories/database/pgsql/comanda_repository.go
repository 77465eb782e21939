package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

const comandaColumns = `comanda_id, numero, fecha, cliente_id, personal_id, COALESCE(caja_id::text, ''), moneda, valor_dolar,
	total, saldo, metodo_pago, COALESCE(descripcion, ''), estado, prepago_ars_id, prepago_usd_id,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxComandaRepository struct {
	BaseRepository
}

func newPgxComandaRepository(pool *pgxpool.Pool) portsrepo.ComandaRepositoryWithTx {
	return &PgxComandaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxComandaRepository implements portsrepo.ComandaRepositoryWithTx
var _ portsrepo.ComandaRepositoryWithTx = (*PgxComandaRepository)(nil)

func scanComanda(row rowScanner) (*domain.Comanda, error) {
	var c domain.Comanda
	err := row.Scan(
		&c.ComandaID, &c.Numero, &c.Fecha, &c.ClienteID, &c.PersonalID, &c.CajaID, &c.Moneda, &c.ValorDolar,
		&c.Total, &c.Saldo, &c.MetodoPago, &c.Descripcion, &c.Estado, &c.PrepagoARSID, &c.PrepagoUSDID,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveComanda inserts the comanda and consumes its prepagos inside one transaction.
// The referenced prepagos are locked so two comandas cannot consume the same one.
func (r *PgxComandaRepository) SaveComanda(ctx context.Context, c domain.Comanda) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	expected := map[string]domain.Moneda{}
	if c.PrepagoARSID != nil {
		expected[*c.PrepagoARSID] = domain.MonedaPesos
	}
	if c.PrepagoUSDID != nil {
		expected[*c.PrepagoUSDID] = domain.MonedaDolares
	}

	ids := make([]string, 0, len(expected))
	for id := range expected {
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		rows, err := tx.Query(ctx, `
			SELECT `+prepagoGuardadoColumns+`
			FROM prepagos_guardados
			WHERE prepago_guardado_id = ANY($1)
			FOR UPDATE;`, ids)
		if err != nil {
			return fmt.Errorf("failed to lock prepagos guardados: %w", err)
		}
		locked, err := collectPrepagosGuardados(rows)
		if err != nil {
			return err
		}
		if len(locked) != len(ids) {
			return fmt.Errorf("%w: prepago guardado does not exist", apperrors.ErrNotFound)
		}
		for _, g := range locked {
			switch {
			case g.Usado():
				return apperrors.NewConflictError(fmt.Sprintf("prepago %s was already used", g.PrepagoGuardadoID))
			case g.ClienteID != c.ClienteID:
				return apperrors.NewConflictError(fmt.Sprintf("prepago %s belongs to another cliente", g.PrepagoGuardadoID))
			case g.Moneda != expected[g.PrepagoGuardadoID]:
				return apperrors.NewConflictError(fmt.Sprintf("prepago %s is not in %s", g.PrepagoGuardadoID, expected[g.PrepagoGuardadoID]))
			}
		}
	}

	var cajaID *string
	if c.CajaID != "" {
		cajaID = &c.CajaID
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO comandas (comanda_id, numero, fecha, cliente_id, personal_id, caja_id, moneda, valor_dolar,
			total, saldo, metodo_pago, descripcion, estado, prepago_ars_id, prepago_usd_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14, $15, $16, $17, $18, $19);`,
		c.ComandaID, c.Numero, c.Fecha, c.ClienteID, c.PersonalID, cajaID, c.Moneda, c.ValorDolar,
		c.Total, c.Saldo, c.MetodoPago, c.Descripcion, c.Estado, c.PrepagoARSID, c.PrepagoUSDID,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "failed to save comanda")
	}

	if len(ids) > 0 {
		_, err = tx.Exec(ctx, `
			UPDATE prepagos_guardados
			SET comanda_id = $1, usado_at = $2
			WHERE prepago_guardado_id = ANY($3);`,
			c.ComandaID, c.CreatedAt, ids,
		)
		if err != nil {
			return mapError(err, "failed to mark prepagos as used")
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxComandaRepository) FindComandaByID(ctx context.Context, comandaID string) (*domain.Comanda, error) {
	query := `SELECT ` + comandaColumns + ` FROM comandas WHERE comanda_id = $1 AND deleted_at IS NULL;`
	c, err := scanComanda(r.Pool.QueryRow(ctx, query, comandaID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find comanda %s", comandaID))
	}
	return c, nil
}

func (r *PgxComandaRepository) ListComandas(ctx context.Context, filter domain.ComandaFilter) ([]domain.Comanda, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)

	where := []string{"deleted_at IS NULL"}
	args := []any{}
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.Desde != nil {
		add("fecha >= $%d", *filter.Desde)
	}
	if filter.Hasta != nil {
		add("fecha < $%d", *filter.Hasta)
	}
	if filter.PersonalID != "" {
		add("personal_id = $%d", filter.PersonalID)
	}
	if filter.CajaID != "" {
		add("caja_id = $%d", filter.CajaID)
	}
	if filter.ClienteID != "" {
		add("cliente_id = $%d", filter.ClienteID)
	}
	if filter.Estado != "" {
		add("estado = $%d", filter.Estado)
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM comandas
		WHERE %s
		ORDER BY fecha DESC, comanda_id DESC
		LIMIT $%d OFFSET $%d;`,
		comandaColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comandas: %w", err)
	}
	defer rows.Close()

	out := []domain.Comanda{}
	for rows.Next() {
		c, err := scanComanda(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comanda row: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comanda rows: %w", err)
	}
	return out, nil
}

func (r *PgxComandaRepository) NextNumero(ctx context.Context) (int64, error) {
	var next int64
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(MAX(numero), 0) + 1 FROM comandas;`).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next comanda numero: %w", err)
	}
	return next, nil
}

func (r *PgxComandaRepository) UpdateComanda(ctx context.Context, c domain.Comanda) error {
	query := `
		UPDATE comandas
		SET descripcion = NULLIF($1, ''), estado = $2, saldo = $3, last_updated_at = $4, last_updated_by = $5
		WHERE comanda_id = $6 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, c.Descripcion, c.Estado, c.Saldo, c.LastUpdatedAt, c.LastUpdatedBy, c.ComandaID)
	if err != nil {
		return mapError(err, "failed to update comanda")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comanda not found or deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxComandaRepository) MarkComandaDeleted(ctx context.Context, comandaID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE comandas
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE comanda_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, comandaID)
	if err != nil {
		return mapError(err, "failed to delete comanda")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comanda not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
