package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// AuditSvcFacade stores and reads recorded operations.
type AuditSvcFacade interface {
	Record(ctx context.Context, entry domain.AuditLog) error
	ListAuditLogs(ctx context.Context, entity, entityID string, limit int) ([]domain.AuditLog, error)
}
