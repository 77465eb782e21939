package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, e domain.AuditLog) error {
	related := e.Related
	if related == nil {
		related = []string{}
	}
	query := `
		INSERT INTO audit_logs (audit_log_id, action, entity, entity_id, actor_id, payload, before_state, related, client_ip, occurred_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		e.AuditLogID, e.Action, e.Entity, e.EntityID, e.ActorID, e.Payload, e.Before, related, e.ClientIP, e.OccurredAt,
	)
	return mapError(err, "failed to save audit log")
}

// ListAuditLogs returns the newest entries first. Empty entity or entityID do not filter.
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, entity, entityID string, limit int) ([]domain.AuditLog, error) {
	limit, _ = normalizePage(limit, 0)
	query := `
		SELECT audit_log_id, action, entity, COALESCE(entity_id, ''), COALESCE(actor_id, ''), payload, before_state,
			related, COALESCE(client_ip, ''), occurred_at
		FROM audit_logs
		WHERE ($1 = '' OR entity = $1) AND ($2 = '' OR entity_id = $2)
		ORDER BY occurred_at DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, entity, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	out := []domain.AuditLog{}
	for rows.Next() {
		var e domain.AuditLog
		if err := rows.Scan(&e.AuditLogID, &e.Action, &e.Entity, &e.EntityID, &e.ActorID, &e.Payload, &e.Before,
			&e.Related, &e.ClientIP, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", err)
	}
	return out, nil
}
