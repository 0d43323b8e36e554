package mapping

import (
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	lineItems := make([]models.InvoiceLineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		lineItems[i] = models.InvoiceLineItem{
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
	var method *string
	if d.PaymentMethod != nil {
		s := string(*d.PaymentMethod)
		method = &s
	}
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		InvoiceNumber:   d.InvoiceNumber,
		FolioID:         d.FolioID,
		FolioNumber:     d.FolioNumber,
		FolioType:       string(d.FolioType),
		IssuedAt:        d.IssuedAt,
		DueDate:         d.DueDate,
		CustomerName:    d.CustomerName,
		CustomerContact: d.CustomerContact,
		CustomerAddress: d.CustomerAddress,
		RoomNumber:      d.RoomNumber,
		CheckInDate:     d.CheckInDate,
		CheckOutDate:    d.CheckOutDate,
		LineItems:       lineItems,
		Subtotal:        d.Subtotal,
		DiscountTotal:   d.DiscountTotal,
		TaxTotal:        d.TaxTotal,
		GrandTotal:      d.GrandTotal,
		AmountPaid:      d.AmountPaid,
		AmountDue:       d.AmountDue,
		PaymentStatus:   string(d.PaymentStatus),
		PaymentMethod:   method,
		IssuedBy:        d.IssuedBy,
		IssuedByName:    d.IssuedByName,
		ServiceCenter:   d.ServiceCenter,
		V1CheckoutID:    d.V1CheckoutID,
		V1SalesIDs:      d.V1SalesIDs,
		PrintCount:      d.PrintCount,
		LastPrintedAt:   d.LastPrintedAt,
		EmailedTo:       d.EmailedTo,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	lineItems := make([]domain.InvoiceLineItem, len(m.LineItems))
	for i, li := range m.LineItems {
		lineItems[i] = domain.InvoiceLineItem{
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
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		InvoiceNumber:   m.InvoiceNumber,
		FolioID:         m.FolioID,
		FolioNumber:     m.FolioNumber,
		FolioType:       domain.FolioType(m.FolioType),
		IssuedAt:        m.IssuedAt,
		DueDate:         m.DueDate,
		CustomerName:    m.CustomerName,
		CustomerContact: m.CustomerContact,
		CustomerAddress: m.CustomerAddress,
		RoomNumber:      m.RoomNumber,
		CheckInDate:     m.CheckInDate,
		CheckOutDate:    m.CheckOutDate,
		LineItems:       lineItems,
		Subtotal:        m.Subtotal,
		DiscountTotal:   m.DiscountTotal,
		TaxTotal:        m.TaxTotal,
		GrandTotal:      m.GrandTotal,
		AmountPaid:      m.AmountPaid,
		AmountDue:       m.AmountDue,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod:   method,
		IssuedBy:        m.IssuedBy,
		IssuedByName:    m.IssuedByName,
		ServiceCenter:   m.ServiceCenter,
		V1CheckoutID:    m.V1CheckoutID,
		V1SalesIDs:      m.V1SalesIDs,
		PrintCount:      m.PrintCount,
		LastPrintedAt:   m.LastPrintedAt,
		EmailedTo:       m.EmailedTo,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
