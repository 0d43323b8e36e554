package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Folio is the folios table row. V1 linkage is stored as typed columns:
// the sales ID list as a text array, checkout/room refs as nullable text.
type Folio struct {
	FolioID     string `json:"folioId"` // Primary Key, e.g. "FOLIO-BAR-{saleID}"
	FolioNumber string `json:"folioNumber"`
	FolioType   string `json:"folioType"`
	Status      string `json:"status"`

	CreatedAt time.Time  `json:"createdAt"`
	ClosedAt  *time.Time `json:"closedAt"`
	VoidedAt  *time.Time `json:"voidedAt"`

	OwnerName    string  `json:"ownerName"`
	OwnerContact *string `json:"ownerContact"`

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
	PaymentStatus string          `json:"paymentStatus"`

	CreatedBy     string  `json:"createdBy"`
	CreatedByName string  `json:"createdByName"`
	ClosedBy      *string `json:"closedBy"`
	ClosedByName  *string `json:"closedByName"`

	V1SalesIDs   []string `json:"v1SalesIds"`
	V1CheckoutID *string  `json:"v1CheckoutId"`
	V1RoomID     *string  `json:"v1RoomId"`

	InvoiceID     *string `json:"invoiceId"`
	InvoiceNumber *string `json:"invoiceNumber"`

	ServiceCenter *string `json:"serviceCenter"`
	Notes         *string `json:"notes"`
}
