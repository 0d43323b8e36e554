package mapping

import (
	"encoding/json"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
)

// ToModelAuditLog converts a domain AuditLog to a model AuditLog,
// serializing the state snapshots to JSON for the JSONB columns.
func ToModelAuditLog(d domain.AuditLog) (models.AuditLog, error) {
	var prev []byte
	if d.PreviousState != nil {
		b, err := json.Marshal(d.PreviousState)
		if err != nil {
			return models.AuditLog{}, err
		}
		prev = b
	}
	next, err := json.Marshal(d.NewState)
	if err != nil {
		return models.AuditLog{}, err
	}
	return models.AuditLog{
		LogID:           d.LogID,
		Timestamp:       d.Timestamp,
		Action:          string(d.Action),
		EntityType:      string(d.EntityType),
		EntityID:        d.EntityID,
		UserID:          d.UserID,
		UserName:        d.UserName,
		UserRole:        d.UserRole,
		PreviousState:   prev,
		NewState:        next,
		DeviceInfo:      d.DeviceInfo,
		IsOfflineAction: d.IsOfflineAction,
	}, nil
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog.
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	var prev, next map[string]any
	if len(m.PreviousState) > 0 {
		_ = json.Unmarshal(m.PreviousState, &prev)
	}
	if len(m.NewState) > 0 {
		_ = json.Unmarshal(m.NewState, &next)
	}
	return domain.AuditLog{
		LogID:           m.LogID,
		Timestamp:       m.Timestamp,
		Action:          domain.AuditAction(m.Action),
		EntityType:      domain.AuditEntityType(m.EntityType),
		EntityID:        m.EntityID,
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserRole:        m.UserRole,
		PreviousState:   prev,
		NewState:        next,
		DeviceInfo:      m.DeviceInfo,
		IsOfflineAction: m.IsOfflineAction,
	}
}

// ToDomainAuditLogSlice converts a slice of model AuditLogs to domain AuditLogs
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	ds := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
