package services

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// AuditSvcFacade records and reads the append-only audit trail. Record is
// fire-and-forget: a failed audit write is logged and swallowed, never
// propagated to the primary operation.
type AuditSvcFacade interface {
	Record(ctx context.Context, entry domain.AuditLog)
	ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error)
}
