package repositories

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// AuditLogRepositoryFacade persists and reads the append-only audit trail.
type AuditLogRepositoryFacade interface {
	// SaveAuditLog appends a single entry. Entries are never updated after
	// creation.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs retrieves entries newest-first with token pagination.
	ListAuditLogs(ctx context.Context, entityID *string, limit int, nextToken *string) ([]domain.AuditLog, *string, error)
}
