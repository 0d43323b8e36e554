package domain

import "time"

// AuditAction is the kind of mutating ledger operation being recorded.
type AuditAction string

const (
	AuditFolioCreate   AuditAction = "FOLIO_CREATE"
	AuditOrderOpen     AuditAction = "ORDER_OPEN"
	AuditFolioClose    AuditAction = "FOLIO_CLOSE"
	AuditFolioVoid     AuditAction = "FOLIO_VOID"
	AuditLineItemAdd   AuditAction = "LINE_ITEM_ADD"
	AuditInvoiceCreate AuditAction = "INVOICE_CREATE"
	AuditInvoicePrint  AuditAction = "INVOICE_PRINT"
	AuditPaymentReceive AuditAction = "PAYMENT_RECEIVE"
)

// AuditEntityType identifies which ledger entity an audit entry refers to.
type AuditEntityType string

const (
	EntityFolio    AuditEntityType = "FOLIO"
	EntityLineItem AuditEntityType = "LINE_ITEM"
	EntityInvoice  AuditEntityType = "INVOICE"
)

// AuditLog is an append-only record of a single mutating ledger operation.
// Entries are never updated or deleted and are retained indefinitely.
type AuditLog struct {
	LogID     string    `json:"logId"`
	Timestamp time.Time `json:"timestamp"`

	Action AuditAction `json:"action"`

	EntityType AuditEntityType `json:"entityType"`
	EntityID   string          `json:"entityId"`

	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`

	PreviousState map[string]any `json:"previousState"`
	NewState      map[string]any `json:"newState"`

	DeviceInfo      *string `json:"deviceInfo"`
	IsOfflineAction bool    `json:"isOfflineAction"`
}
