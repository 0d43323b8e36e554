package dto

import (
	"time"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// ListAuditLogsParams filters the compliance view. Admin only.
type ListAuditLogsParams struct {
	EntityID  *string `form:"entityId"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// AuditLogResponse is the wire shape of one audit trail entry.
type AuditLogResponse struct {
	LogID           string                 `json:"logId"`
	Timestamp       time.Time              `json:"timestamp"`
	Action          domain.AuditAction     `json:"action"`
	EntityType      domain.AuditEntityType `json:"entityType"`
	EntityID        string                 `json:"entityId"`
	UserID          string                 `json:"userId"`
	UserName        string                 `json:"userName"`
	UserRole        string                 `json:"userRole"`
	PreviousState   map[string]any         `json:"previousState,omitempty"`
	NewState        map[string]any         `json:"newState"`
	IsOfflineAction bool                   `json:"isOfflineAction"`
}

// ListAuditLogsResponse is a page of audit entries plus the continuation token.
type ListAuditLogsResponse struct {
	Entries   []AuditLogResponse `json:"entries"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToAuditLogResponses converts domain audit entries to their wire shape.
func ToAuditLogResponses(entries []domain.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditLogResponse{
			LogID:           e.LogID,
			Timestamp:       e.Timestamp,
			Action:          e.Action,
			EntityType:      e.EntityType,
			EntityID:        e.EntityID,
			UserID:          e.UserID,
			UserName:        e.UserName,
			UserRole:        e.UserRole,
			PreviousState:   e.PreviousState,
			NewState:        e.NewState,
			IsOfflineAction: e.IsOfflineAction,
		}
	}
	return out
}
