package models

import "time"

// AuditLog is the audit_logs table row. Insert-only, never updated or
// deleted. State snapshots are stored as JSONB.
type AuditLog struct {
	LogID     string    `json:"logId"` // Primary Key, e.g. "LOG-{uuid}"
	Timestamp time.Time `json:"timestamp"`

	Action string `json:"action"`

	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`

	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`

	PreviousState []byte `json:"previousState"` // JSONB, nullable
	NewState      []byte `json:"newState"`      // JSONB

	DeviceInfo      *string `json:"deviceInfo"`
	IsOfflineAction bool    `json:"isOfflineAction"`
}
