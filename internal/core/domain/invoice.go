package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineItem is the denormalized snapshot of a folio line item frozen
// onto an invoice at closure time.
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

// Invoice is the immutable, sequentially numbered financial document
// produced exactly once per closed folio. Financial fields are frozen at
// creation; only the print/delivery counters may change afterwards.
type Invoice struct {
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`

	FolioID     string    `json:"folioId"`
	FolioNumber string    `json:"folioNumber"`
	FolioType   FolioType `json:"folioType"`

	IssuedAt time.Time  `json:"issuedAt"`
	DueDate  *time.Time `json:"dueDate"`

	CustomerName    string  `json:"customerName"`
	CustomerContact *string `json:"customerContact"`
	CustomerAddress *string `json:"customerAddress"`

	RoomNumber   *string    `json:"roomNumber"`
	CheckInDate  *time.Time `json:"checkInDate"`
	CheckOutDate *time.Time `json:"checkOutDate"`

	LineItems     []InvoiceLineItem `json:"lineItems"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	DiscountTotal decimal.Decimal   `json:"discountTotal"`
	TaxTotal      decimal.Decimal   `json:"taxTotal"`
	GrandTotal    decimal.Decimal   `json:"grandTotal"`

	AmountPaid decimal.Decimal `json:"amountPaid"`
	AmountDue  decimal.Decimal `json:"amountDue"`
	// Invoices do not model an overpaid state; OVERPAID collapses to PAID here.
	PaymentStatus PaymentStatus  `json:"paymentStatus"`
	PaymentMethod *PaymentMethod `json:"paymentMethod"`

	IssuedBy     string `json:"issuedBy"`
	IssuedByName string `json:"issuedByName"`

	ServiceCenter *string `json:"serviceCenter"`

	V1CheckoutID *string  `json:"v1CheckoutId"`
	V1SalesIDs   []string `json:"v1SalesIds"`

	// Mutable delivery metadata.
	PrintCount    int        `json:"printCount"`
	LastPrintedAt *time.Time `json:"lastPrintedAt"`
	EmailedTo     *string    `json:"emailedTo"`
}

// InvoicePaymentStatus collapses a folio payment status onto the smaller
// set an invoice carries.
func InvoicePaymentStatus(s PaymentStatus) PaymentStatus {
	if s == PaymentOverpaid {
		return PaymentPaid
	}
	return s
}
