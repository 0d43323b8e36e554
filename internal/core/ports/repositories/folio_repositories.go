package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// FolioListFilter narrows folio list queries for the "open tickets" and
// "active folios" views.
type FolioListFilter struct {
	Status        *domain.FolioStatus
	FolioType     *domain.FolioType
	ServiceCenter *string
}

// PaymentOutcome is the result of recording a payment against a folio.
type PaymentOutcome struct {
	Payment       domain.Payment
	NewStatus     domain.FolioStatus
	PaymentStatus domain.PaymentStatus
	Balance       decimal.Decimal
	// Set when the payment auto-closed the folio.
	Invoice *domain.Invoice
	// True when a payment with this ID was recorded by an earlier attempt
	// and nothing was written now.
	AlreadyRecorded bool
}

// FolioReader defines read operations for folio data.
type FolioReader interface {
	// FindFolioByID retrieves a folio by its immutable identifier.
	FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error)

	// FindActiveFolioForRoom returns the single OPEN ROOM folio for a room,
	// or ErrNotFound if the room has none.
	FindActiveFolioForRoom(ctx context.Context, roomID string) (*domain.Folio, error)

	// ListFolios retrieves a filtered, token-paginated folio list.
	ListFolios(ctx context.Context, filter FolioListFilter, limit int, nextToken *string) ([]domain.Folio, *string, error)

	// FindLineItemsByFolioID retrieves all line items for a folio in creation order.
	FindLineItemsByFolioID(ctx context.Context, folioID string) ([]domain.FolioLineItem, error)

	// FindPaymentsByFolioID retrieves all payments recorded against a folio.
	FindPaymentsByFolioID(ctx context.Context, folioID string) ([]domain.Payment, error)
}

// FolioWriter defines the transactional write operations of the ledger.
// Every method is a single store transaction; partial writes are never
// visible to other callers.
type FolioWriter interface {
	// CreateFolio persists a new OPEN folio with its initial line items
	// (possibly none), assigning the folio number from the yearly sequence
	// inside the same transaction.
	CreateFolio(ctx context.Context, folio domain.Folio, items []domain.FolioLineItem) (*domain.Folio, error)

	// CreateSettledFolio persists an immediately-CLOSED BAR folio together
	// with its line items, its settling payment and its invoice, all in one
	// transaction. The folio ID is derived from the originating sale ID, so
	// a retry finds the existing folio and returns it with created=false
	// instead of writing a duplicate.
	CreateSettledFolio(ctx context.Context, folio domain.Folio, items []domain.FolioLineItem, payment domain.Payment) (*domain.Folio, *domain.Invoice, bool, error)

	// AddLineItem appends a charge to an OPEN or PART_PAID folio and
	// atomically increments the folio aggregates by the item's contribution.
	// Returns the folio as updated and inserted=false when an item with the
	// same ID already exists, in which case nothing is written. Fails with
	// ErrConflict when the folio is settled and ErrNotFound when it does not
	// exist; no partial write occurs.
	AddLineItem(ctx context.Context, folioID string, item domain.FolioLineItem) (*domain.Folio, bool, error)

	// AddPayment appends a payment inside one transaction: re-reads the folio,
	// rejects settled folios, recomputes the paid amount and balance, and
	// transitions the status. When the balance reaches zero the folio is
	// closed and its invoice generated in the same transaction. A payment
	// whose ID is already recorded writes nothing and reports the outcome the
	// first application produced, with AlreadyRecorded set.
	AddPayment(ctx context.Context, folioID string, payment domain.Payment, actor domain.Actor) (*PaymentOutcome, error)

	// CloseFolioWithInvoice closes an OPEN folio at explicit checkout:
	// snapshots its line items, consumes the yearly invoice sequence and
	// writes the invoice, all in one transaction. Line-item locking is a
	// follow-up write and is not part of the transaction.
	CloseFolioWithInvoice(ctx context.Context, folioID string, method domain.PaymentMethod, amountPaid decimal.Decimal, actor domain.Actor, v1CheckoutID *string, closedAt time.Time) (*domain.Invoice, error)

	// VoidFolio transitions an OPEN folio to VOIDED, recording the reason.
	// No invoice is ever generated for a voided folio.
	VoidFolio(ctx context.Context, folioID string, reason string, actor domain.Actor, voidedAt time.Time) error

	// LockLineItems flips IsLocked on every line item of a folio. Best-effort
	// follow-up after closure or void.
	LockLineItems(ctx context.Context, folioID string) error
}

// FolioRepositoryFacade combines all folio repository interfaces.
type FolioRepositoryFacade interface {
	FolioReader
	FolioWriter
}
