package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineItem is one entry of the denormalized line item snapshot
// stored on the invoices row as a JSONB column.
type InvoiceLineItem struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Category       string          `json:"category"`
}

// Invoice is the invoices table row. Financial columns are written once at
// creation; only the print/delivery metadata columns are ever updated.
type Invoice struct {
	InvoiceID     string `json:"invoiceId"` // Primary Key, e.g. "INV-{uuid}"
	InvoiceNumber string `json:"invoiceNumber"`

	FolioID     string `json:"folioId"`
	FolioNumber string `json:"folioNumber"`
	FolioType   string `json:"folioType"`

	IssuedAt time.Time  `json:"issuedAt"`
	DueDate  *time.Time `json:"dueDate"`

	CustomerName    string  `json:"customerName"`
	CustomerContact *string `json:"customerContact"`
	CustomerAddress *string `json:"customerAddress"`

	RoomNumber   *string    `json:"roomNumber"`
	CheckInDate  *time.Time `json:"checkInDate"`
	CheckOutDate *time.Time `json:"checkOutDate"`

	LineItems     []InvoiceLineItem `json:"lineItems"` // JSONB
	Subtotal      decimal.Decimal   `json:"subtotal"`
	DiscountTotal decimal.Decimal   `json:"discountTotal"`
	TaxTotal      decimal.Decimal   `json:"taxTotal"`
	GrandTotal    decimal.Decimal   `json:"grandTotal"`

	AmountPaid    decimal.Decimal `json:"amountPaid"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentMethod *string         `json:"paymentMethod"`

	IssuedBy     string `json:"issuedBy"`
	IssuedByName string `json:"issuedByName"`

	ServiceCenter *string `json:"serviceCenter"`

	V1CheckoutID *string  `json:"v1CheckoutId"`
	V1SalesIDs   []string `json:"v1SalesIds"`

	PrintCount    int        `json:"printCount"`
	LastPrintedAt *time.Time `json:"lastPrintedAt"`
	EmailedTo     *string    `json:"emailedTo"`
}
