package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// CloseFolioRequest settles a ROOM folio at explicit checkout.
type CloseFolioRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	V1CheckoutID  *string              `json:"v1CheckoutId"`
}

// ListInvoicesParams filters the billing history view. Search matches
// invoice number or customer name.
type ListInvoicesParams struct {
	Search    *string `form:"search"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// InvoiceLineItemResponse is the denormalized line snapshot on an invoice.
type InvoiceLineItemResponse struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Category       string          `json:"category"`
}

// InvoiceResponse is the wire shape of an invoice, carrying everything the
// renderer needs.
type InvoiceResponse struct {
	InvoiceID     string               `json:"invoiceId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	FolioID       string               `json:"folioId"`
	FolioNumber   string               `json:"folioNumber"`
	FolioType     domain.FolioType     `json:"folioType"`
	IssuedAt      time.Time            `json:"issuedAt"`
	CustomerName  string               `json:"customerName"`
	RoomNumber    *string              `json:"roomNumber,omitempty"`
	CheckInDate   *time.Time           `json:"checkInDate,omitempty"`
	CheckOutDate  *time.Time           `json:"checkOutDate,omitempty"`
	LineItems     []InvoiceLineItemResponse `json:"lineItems"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	DiscountTotal decimal.Decimal      `json:"discountTotal"`
	TaxTotal      decimal.Decimal      `json:"taxTotal"`
	GrandTotal    decimal.Decimal      `json:"grandTotal"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	AmountDue     decimal.Decimal      `json:"amountDue"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod,omitempty"`
	IssuedByName  string               `json:"issuedByName"`
	ServiceCenter *string              `json:"serviceCenter,omitempty"`
	PrintCount    int                  `json:"printCount"`
	LastPrintedAt *time.Time           `json:"lastPrintedAt,omitempty"`
	EmailedTo     *string              `json:"emailedTo,omitempty"`
}

// EmailInvoiceRequest records the address an invoice copy was sent to.
// Delivery itself happens outside the ledger.
type EmailInvoiceRequest struct {
	EmailedTo string `json:"emailedTo" binding:"required,email"`
}

// ListInvoicesResponse is a page of invoices plus the continuation token.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain invoice to its wire shape.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lineItems := make([]InvoiceLineItemResponse, len(inv.LineItems))
	for i, li := range inv.LineItems {
		lineItems[i] = InvoiceLineItemResponse{
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			Subtotal:       li.Subtotal,
			DiscountAmount: li.DiscountAmount,
			TaxAmount:      li.TaxAmount,
			TotalAmount:    li.TotalAmount,
			Category:       li.Category,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		FolioID:       inv.FolioID,
		FolioNumber:   inv.FolioNumber,
		FolioType:     inv.FolioType,
		IssuedAt:      inv.IssuedAt,
		CustomerName:  inv.CustomerName,
		RoomNumber:    inv.RoomNumber,
		CheckInDate:   inv.CheckInDate,
		CheckOutDate:  inv.CheckOutDate,
		LineItems:     lineItems,
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		TaxTotal:      inv.TaxTotal,
		GrandTotal:    inv.GrandTotal,
		AmountPaid:    inv.AmountPaid,
		AmountDue:     inv.AmountDue,
		PaymentStatus: inv.PaymentStatus,
		PaymentMethod: inv.PaymentMethod,
		IssuedByName:  inv.IssuedByName,
		ServiceCenter: inv.ServiceCenter,
		PrintCount:    inv.PrintCount,
		LastPrintedAt: inv.LastPrintedAt,
		EmailedTo:     inv.EmailedTo,
	}
}

// ToInvoiceResponses converts a slice of domain invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
