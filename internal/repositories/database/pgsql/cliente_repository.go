package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clienteColumns = `cliente_id, nombre, COALESCE(telefono, ''), COALESCE(email, ''), COALESCE(instagram, ''),
	COALESCE(notas, ''), created_at, created_by, last_updated_at, last_updated_by`

type PgxClienteRepository struct {
	BaseRepository
}

func newPgxClienteRepository(pool *pgxpool.Pool) portsrepo.ClienteRepositoryFacade {
	return &PgxClienteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClienteRepositoryFacade = (*PgxClienteRepository)(nil)

func scanCliente(row rowScanner) (*domain.Cliente, error) {
	var c domain.Cliente
	err := row.Scan(&c.ClienteID, &c.Nombre, &c.Telefono, &c.Email, &c.Instagram, &c.Notas,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxClienteRepository) SaveCliente(ctx context.Context, c domain.Cliente) error {
	query := `
		INSERT INTO clientes (cliente_id, nombre, telefono, email, instagram, notas,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		c.ClienteID, c.Nombre, c.Telefono, c.Email, c.Instagram, c.Notas,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	return mapError(err, "failed to save cliente")
}

func (r *PgxClienteRepository) FindClienteByID(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE cliente_id = $1;`
	c, err := scanCliente(r.Pool.QueryRow(ctx, query, clienteID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find cliente %s", clienteID))
	}
	return c, nil
}

func (r *PgxClienteRepository) ListClientes(ctx context.Context, filter domain.ClienteFilter) ([]domain.Cliente, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)
	pattern := "%"
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern = "%" + escapeLike(strings.ToLower(s)) + "%"
	}
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE LOWER(nombre) LIKE $1
		ORDER BY nombre, cliente_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	out := []domain.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cliente row: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cliente rows: %w", err)
	}
	return out, nil
}

func (r *PgxClienteRepository) UpdateCliente(ctx context.Context, c domain.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $1, telefono = NULLIF($2, ''), email = NULLIF($3, ''), instagram = NULLIF($4, ''),
			notas = NULLIF($5, ''), last_updated_at = $6, last_updated_by = $7
		WHERE cliente_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		c.Nombre, c.Telefono, c.Email, c.Instagram, c.Notas, c.LastUpdatedAt, c.LastUpdatedBy, c.ClienteID,
	)
	if err != nil {
		return mapError(err, "failed to update cliente")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cliente not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// escapeLike escapes the LIKE wildcards in s (backslash is the default escape character).
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
