package repositories

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// AuditLogRepositoryFacade persists recorded operations.
type AuditLogRepositoryFacade interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
	ListAuditLogs(ctx context.Context, entity, entityID string, limit int) ([]domain.AuditLog, error)
}
