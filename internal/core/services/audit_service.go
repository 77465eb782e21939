package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade, base BaseService) portssvc.AuditSvcFacade {
	return &auditService{BaseService: base, auditRepo: auditRepo}
}

// Record stores entry, filling the id and timestamp when missing.
func (s *auditService) Record(ctx context.Context, entry domain.AuditLog) error {
	if entry.AuditLogID == "" {
		entry.AuditLogID = uuid.NewString()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = s.Now()
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit log: %w", err)
	}
	s.LogDebug(ctx, "Audit log recorded", map[string]any{"action": entry.Action, "entity": entry.Entity})
	return nil
}

func (s *auditService) ListAuditLogs(ctx context.Context, entity, entityID string, limit int) ([]domain.AuditLog, error) {
	list, err := s.auditRepo.ListAuditLogs(ctx, entity, entityID, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return list, nil
}
