package usecase

import (
	"context"
	"log"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// auditEntry builds a ledger row for one state-changing action (or denied
// attempt).
func auditEntry(companyID, entityType, entityID, action, prev, next, reason string, actor entities.Actor, denied bool, at time.Time) entities.AuditLogEntry {
	return entities.AuditLogEntry{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		EntityType:    entityType,
		EntityID:      entityID,
		Action:        action,
		PreviousState: prev,
		NewState:      next,
		Reason:        reason,
		Denied:        denied,
		Actor:         actor,
		CreatedAt:     at,
	}
}

// auditBestEffort appends a ledger row for diagnostics of an already-decided
// outcome (denials, token failures). An append failure here must not mask the
// decision, so it is logged and swallowed.
func auditBestEffort(ctx context.Context, repo interfaces.IAuditLogRepository, e entities.AuditLogEntry) {
	if err := repo.Append(ctx, e); err != nil {
		log.Printf("[audit][usecase] append failed entity=%s/%s action=%s err=%v", e.EntityType, e.EntityID, e.Action, err)
	}
}
