package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewInvoiceFromFolio assembles the immutable invoice snapshot for a folio
// being closed. Line items are denormalized onto the invoice so the printed
// document never depends on the line item store again. The invoice ID is
// supplied by the caller; the invoice number comes from the yearly sequence
// inside the closing transaction.
func NewInvoiceFromFolio(invoiceID, invoiceNumber string, folio Folio, items []FolioLineItem, method PaymentMethod, amountPaid decimal.Decimal, actor Actor, issuedAt time.Time, v1CheckoutID *string) Invoice {
	lineItems := make([]InvoiceLineItem, len(items))
	for i, li := range items {
		lineItems[i] = InvoiceLineItem{
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

	amountDue := folio.GrandTotal.Sub(amountPaid)
	if amountDue.IsNegative() {
		amountDue = decimal.Zero
	}

	var checkOut *time.Time
	if folio.FolioType == FolioRoom {
		t := issuedAt
		checkOut = &t
	}

	m := method
	return Invoice{
		InvoiceID:       invoiceID,
		InvoiceNumber:   invoiceNumber,
		FolioID:         folio.FolioID,
		FolioNumber:     folio.FolioNumber,
		FolioType:       folio.FolioType,
		IssuedAt:        issuedAt,
		CustomerName:    folio.OwnerName,
		CustomerContact: folio.OwnerContact,
		RoomNumber:      folio.RoomNumber,
		CheckInDate:     folio.CheckInDate,
		CheckOutDate:    checkOut,
		LineItems:       lineItems,
		Subtotal:        folio.Subtotal,
		DiscountTotal:   folio.DiscountTotal,
		TaxTotal:        folio.TaxTotal,
		GrandTotal:      folio.GrandTotal,
		AmountPaid:      amountPaid,
		AmountDue:       amountDue,
		PaymentStatus:   InvoicePaymentStatus(PaymentStatusFor(amountPaid, folio.GrandTotal)),
		PaymentMethod:   &m,
		IssuedBy:        actor.StaffID,
		IssuedByName:    actor.DisplayName,
		ServiceCenter:   folio.ServiceCenter,
		V1CheckoutID:    v1CheckoutID,
		V1SalesIDs:      folio.V1LinkedRecords.SalesIDs,
		PrintCount:      0,
	}
}
