package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

// auditService records and reads the append-only audit trail.
type auditService struct {
	auditRepo portsrepo.AuditLogRepositoryFacade
	now       func() time.Time
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends an audit entry, filling in the log ID and timestamp. A
// failed audit write is logged and swallowed; it never fails the primary
// operation it describes.
func (s *auditService) Record(ctx context.Context, entry domain.AuditLog) {
	if entry.LogID == "" {
		entry.LogID = "LOG-" + uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write audit log",
			slog.String("action", string(entry.Action)),
			slog.String("entity_id", entry.EntityID),
			slog.String("error", err.Error()),
		)
	}
}

// ListAuditLogs returns a paginated view of the trail, optionally filtered
// to one entity.
func (s *auditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	entries, nextToken, err := s.auditRepo.ListAuditLogs(ctx, params.EntityID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListAuditLogsResponse{
		Entries:   dto.ToAuditLogResponses(entries),
		NextToken: nextToken,
	}, nil
}
