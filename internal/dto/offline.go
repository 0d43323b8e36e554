package dto

import (
	"time"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// OperationKind tags a queued offline operation.
type OperationKind string

const (
	OpBarSale OperationKind = "BAR_SALE"
	OpCharge  OperationKind = "CHARGE"
	OpPayment OperationKind = "PAYMENT"
	OpVoid    OperationKind = "VOID"
)

// QueuedActor is the staff identity captured when the operation was created.
type QueuedActor struct {
	StaffID     string           `json:"staffId"`
	DisplayName string           `json:"displayName"`
	Role        domain.StaffRole `json:"role"`
}

// QueuedOperation is one pending ledger mutation captured while the store
// was unreachable. CorrelationID is assigned once, at creation time, and is
// the idempotency key under which the replay may safely retry. Exactly one
// of the request fields is set, matching Kind.
type QueuedOperation struct {
	CorrelationID string        `json:"correlationId"`
	Kind          OperationKind `json:"kind"`
	EnqueuedAt    time.Time     `json:"enqueuedAt"`
	Actor         QueuedActor   `json:"actor"`

	// Target folio for CHARGE, PAYMENT and VOID operations.
	FolioID string `json:"folioId,omitempty"`

	BarSale *CreateBarSaleRequest `json:"barSale,omitempty"`
	Charge  *AddLineItemRequest   `json:"charge,omitempty"`
	Payment *AddPaymentRequest    `json:"payment,omitempty"`
	Void    *VoidFolioRequest     `json:"void,omitempty"`
}

// SyncStatusResponse reports the state of the local offline queue.
type SyncStatusResponse struct {
	PendingOperations int        `json:"pendingOperations"`
	OldestEnqueuedAt  *time.Time `json:"oldestEnqueuedAt,omitempty"`
}

// ReplayResultResponse reports one replay pass over the offline queue.
// InProgress means the pass did not run because another one already holds
// the queue.
type ReplayResultResponse struct {
	Synced     int  `json:"synced"`
	Remaining  int  `json:"remaining"`
	Halted     bool `json:"halted"`
	InProgress bool `json:"inProgress,omitempty"`
}
