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

const personalColumns = `personal_id, email, password_hash, nombre, rol, unidades_negocio, comision_porcentaje,
	activo, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxPersonalRepository struct {
	BaseRepository
}

func newPgxPersonalRepository(pool *pgxpool.Pool) portsrepo.PersonalRepositoryFacade {
	return &PgxPersonalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPersonalRepository implements portsrepo.PersonalRepositoryFacade
var _ portsrepo.PersonalRepositoryFacade = (*PgxPersonalRepository)(nil)

func scanPersonal(row rowScanner) (*domain.Personal, error) {
	var p domain.Personal
	err := row.Scan(
		&p.PersonalID,
		&p.Email,
		&p.PasswordHash,
		&p.Nombre,
		&p.Rol,
		&p.UnidadesNegocio,
		&p.ComisionPorcentaje,
		&p.Activo,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPersonalRepository) SavePersonal(ctx context.Context, p domain.Personal) error {
	query := `
		INSERT INTO personal (personal_id, email, password_hash, nombre, rol, unidades_negocio, comision_porcentaje,
			activo, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	unidades := p.UnidadesNegocio
	if unidades == nil {
		unidades = []string{}
	}
	_, err := r.Pool.Exec(ctx, query,
		p.PersonalID,
		strings.ToLower(p.Email),
		p.PasswordHash,
		p.Nombre,
		p.Rol,
		unidades,
		p.ComisionPorcentaje,
		p.Activo,
		p.CreatedAt,
		p.CreatedBy,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	)
	return mapError(err, "failed to save personal")
}

func (r *PgxPersonalRepository) FindPersonalByID(ctx context.Context, personalID string) (*domain.Personal, error) {
	query := `SELECT ` + personalColumns + ` FROM personal WHERE personal_id = $1;`
	p, err := scanPersonal(r.Pool.QueryRow(ctx, query, personalID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find personal %s", personalID))
	}
	return p, nil
}

func (r *PgxPersonalRepository) FindActivePersonalByID(ctx context.Context, personalID string) (*domain.Personal, error) {
	query := `SELECT ` + personalColumns + ` FROM personal WHERE personal_id = $1 AND activo AND deleted_at IS NULL;`
	p, err := scanPersonal(r.Pool.QueryRow(ctx, query, personalID))
	if err != nil {
		return nil, mapError(err, "failed to find active personal")
	}
	return p, nil
}

func (r *PgxPersonalRepository) FindActivePersonalByEmail(ctx context.Context, email string) (*domain.Personal, error) {
	query := `SELECT ` + personalColumns + ` FROM personal WHERE LOWER(email) = LOWER($1) AND activo AND deleted_at IS NULL;`
	p, err := scanPersonal(r.Pool.QueryRow(ctx, query, strings.TrimSpace(email)))
	if err != nil {
		return nil, mapError(err, "failed to find active personal by email")
	}
	return p, nil
}

func (r *PgxPersonalRepository) ListPersonal(ctx context.Context, filter domain.PersonalFilter) ([]domain.Personal, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)
	query := `
		SELECT ` + personalColumns + `
		FROM personal
		WHERE deleted_at IS NULL AND ($1 OR activo)
		ORDER BY nombre, personal_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, filter.IncludeInactive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query personal: %w", err)
	}
	defer rows.Close()

	out := []domain.Personal{}
	for rows.Next() {
		p, err := scanPersonal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personal row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating personal rows: %w", err)
	}
	return out, nil
}

func (r *PgxPersonalRepository) UpdatePersonal(ctx context.Context, p domain.Personal) error {
	query := `
		UPDATE personal
		SET email = $1, nombre = $2, rol = $3, unidades_negocio = $4, comision_porcentaje = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE personal_id = $8 AND deleted_at IS NULL;
	`
	unidades := p.UnidadesNegocio
	if unidades == nil {
		unidades = []string{}
	}
	cmdTag, err := r.Pool.Exec(ctx, query,
		strings.ToLower(p.Email),
		p.Nombre,
		p.Rol,
		unidades,
		p.ComisionPorcentaje,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
		p.PersonalID,
	)
	if err != nil {
		return mapError(err, "failed to update personal")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("personal not found or deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPersonalRepository) UpdatePasswordHash(ctx context.Context, personalID, hash string, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE personal
		SET password_hash = $1, last_updated_at = $2, last_updated_by = $3
		WHERE personal_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, hash, updatedAt, updatedBy, personalID)
	if err != nil {
		return mapError(err, "failed to update password")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("personal not found or deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPersonalRepository) DeactivatePersonal(ctx context.Context, personalID string, deactivatedAt time.Time, deactivatedBy string) error {
	query := `
		UPDATE personal
		SET activo = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE personal_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deactivatedAt, deactivatedBy, personalID)
	if err != nil {
		return mapError(err, "failed to deactivate personal")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("personal not found or deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
