package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
	"github.com/sunrisehms/folio_ledger_app/internal/utils/mapping"
	"github.com/sunrisehms/folio_ledger_app/internal/utils/pagination"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates the repository backing the append-only
// audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepositoryFacade
var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

const auditColumns = `
	log_id, ts, action, entity_type, entity_id,
	user_id, user_name, user_role,
	previous_state, new_state,
	device_info, is_offline_action`

// SaveAuditLog appends a single entry.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m, err := mapping.ToModelAuditLog(entry)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode audit state snapshots", err)
	}
	query := `
		INSERT INTO audit_logs (` + auditColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.LogID, m.Timestamp, m.Action, m.EntityType, m.EntityID,
		m.UserID, m.UserName, m.UserRole,
		m.PreviousState, m.NewState,
		m.DeviceInfo, m.IsOfflineAction,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.LogID, err)
	}
	return nil
}

// ListAuditLogs retrieves entries newest-first with token pagination,
// optionally filtered to a single entity.
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, entityID *string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	query := `SELECT ` + auditColumns + ` FROM audit_logs WHERE 1=1`
	args := []any{}

	if entityID != nil && *entityID != "" {
		args = append(args, *entityID)
		query += ` AND entity_id = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastTS, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastTS, lastID)
		query += ` AND (ts, log_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY ts DESC, log_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query audit logs", err)
	}
	defer rows.Close()

	entries := make([]models.AuditLog, 0, fetchLimit)
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(
			&m.LogID, &m.Timestamp, &m.Action, &m.EntityType, &m.EntityID,
			&m.UserID, &m.UserName, &m.UserRole,
			&m.PreviousState, &m.NewState,
			&m.DeviceInfo, &m.IsOfflineAction,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating audit log rows", err)
	}

	var nextTokenVal *string
	results := entries
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeCursor(last.Timestamp, last.LogID)
		nextTokenVal = &token
		results = entries[:limit]
	}

	return mapping.ToDomainAuditLogSlice(results), nextTokenVal, nil
}
