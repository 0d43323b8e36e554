package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioType classifies the financial container.
type FolioType string

const (
	FolioBar  FolioType = "BAR"
	FolioRoom FolioType = "ROOM"
)

// FolioStatus is the folio lifecycle state.
// OPEN and PART_PAID accept new line items and payments.
// CLOSED and VOIDED are terminal; a folio is never reopened.
type FolioStatus string

const (
	FolioOpen     FolioStatus = "OPEN"
	FolioPartPaid FolioStatus = "PART_PAID"
	FolioClosed   FolioStatus = "CLOSED"
	FolioVoided   FolioStatus = "VOIDED"
)

// IsMutable reports whether the folio still accepts line items and payments.
func (s FolioStatus) IsMutable() bool {
	return s == FolioOpen || s == FolioPartPaid
}

// IsTerminal reports whether the folio has reached a final state.
func (s FolioStatus) IsTerminal() bool {
	return s == FolioClosed || s == FolioVoided
}

// PaymentStatus tracks how much of the folio's grand total has been settled.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPartial  PaymentStatus = "PARTIAL"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentOverpaid PaymentStatus = "OVERPAID"
)

// V1LinkedRecords carries back-references to legacy bookkeeping records.
// The lists are append-only for the duration of the migration period.
type V1LinkedRecords struct {
	SalesIDs   []string `json:"salesIds"`
	CheckoutID *string  `json:"checkoutId"`
	RoomID     *string  `json:"roomId"`
}

// Folio is the core financial container: a running tab of charges for one
// guest stay (ROOM) or one bar/table order (BAR).
type Folio struct {
	FolioID     string      `json:"folioId"`
	FolioNumber string      `json:"folioNumber"`
	FolioType   FolioType   `json:"folioType"`
	Status      FolioStatus `json:"status"`

	CreatedAt time.Time  `json:"createdAt"`
	ClosedAt  *time.Time `json:"closedAt"`
	VoidedAt  *time.Time `json:"voidedAt"`

	OwnerName    string  `json:"ownerName"`
	OwnerContact *string `json:"ownerContact"`

	// Room linkage, nil for BAR folios (unless a bar sale is charged to a room).
	RoomID       *string    `json:"roomId"`
	RoomNumber   *string    `json:"roomNumber"`
	CheckInDate  *time.Time `json:"checkInDate"`
	CheckOutDate *time.Time `json:"checkOutDate"`
	NightsBooked *int       `json:"nightsBooked"`
	Adults       *int       `json:"adults"`
	Children     *int       `json:"children"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`

	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`

	CreatedBy     string  `json:"createdBy"`
	CreatedByName string  `json:"createdByName"`
	ClosedBy      *string `json:"closedBy"`
	ClosedByName  *string `json:"closedByName"`

	V1LinkedRecords V1LinkedRecords `json:"v1LinkedRecords"`

	// Set exactly once, when the folio is closed and its invoice generated.
	InvoiceID     *string `json:"invoiceId"`
	InvoiceNumber *string `json:"invoiceNumber"`

	ServiceCenter *string `json:"serviceCenter"`
	Notes         *string `json:"notes"`
}

// Balance returns the amount still owed on the folio. Never negative.
func (f *Folio) Balance() decimal.Decimal {
	balance := f.GrandTotal.Sub(f.AmountPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// PaymentStatusFor derives the payment status from a paid amount against a
// grand total. OVERPAID is a folio-only state; invoices collapse it to PAID.
func PaymentStatusFor(amountPaid, grandTotal decimal.Decimal) PaymentStatus {
	switch {
	case amountPaid.GreaterThan(grandTotal):
		return PaymentOverpaid
	case amountPaid.Equal(grandTotal) && grandTotal.IsPositive():
		return PaymentPaid
	case amountPaid.IsPositive():
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}
