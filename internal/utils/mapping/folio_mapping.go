package mapping

import (
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
)

// ToModelFolio converts a domain Folio to a model Folio
func ToModelFolio(d domain.Folio) models.Folio {
	return models.Folio{
		FolioID:       d.FolioID,
		FolioNumber:   d.FolioNumber,
		FolioType:     string(d.FolioType),
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		ClosedAt:      d.ClosedAt,
		VoidedAt:      d.VoidedAt,
		OwnerName:     d.OwnerName,
		OwnerContact:  d.OwnerContact,
		RoomID:        d.RoomID,
		RoomNumber:    d.RoomNumber,
		CheckInDate:   d.CheckInDate,
		CheckOutDate:  d.CheckOutDate,
		NightsBooked:  d.NightsBooked,
		Adults:        d.Adults,
		Children:      d.Children,
		Subtotal:      d.Subtotal,
		DiscountTotal: d.DiscountTotal,
		TaxTotal:      d.TaxTotal,
		GrandTotal:    d.GrandTotal,
		AmountPaid:    d.AmountPaid,
		PaymentStatus: string(d.PaymentStatus),
		CreatedBy:     d.CreatedBy,
		CreatedByName: d.CreatedByName,
		ClosedBy:      d.ClosedBy,
		ClosedByName:  d.ClosedByName,
		V1SalesIDs:    d.V1LinkedRecords.SalesIDs,
		V1CheckoutID:  d.V1LinkedRecords.CheckoutID,
		V1RoomID:      d.V1LinkedRecords.RoomID,
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		ServiceCenter: d.ServiceCenter,
		Notes:         d.Notes,
	}
}

// ToDomainFolio converts a model Folio to a domain Folio
func ToDomainFolio(m models.Folio) domain.Folio {
	return domain.Folio{
		FolioID:       m.FolioID,
		FolioNumber:   m.FolioNumber,
		FolioType:     domain.FolioType(m.FolioType),
		Status:        domain.FolioStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		ClosedAt:      m.ClosedAt,
		VoidedAt:      m.VoidedAt,
		OwnerName:     m.OwnerName,
		OwnerContact:  m.OwnerContact,
		RoomID:        m.RoomID,
		RoomNumber:    m.RoomNumber,
		CheckInDate:   m.CheckInDate,
		CheckOutDate:  m.CheckOutDate,
		NightsBooked:  m.NightsBooked,
		Adults:        m.Adults,
		Children:      m.Children,
		Subtotal:      m.Subtotal,
		DiscountTotal: m.DiscountTotal,
		TaxTotal:      m.TaxTotal,
		GrandTotal:    m.GrandTotal,
		AmountPaid:    m.AmountPaid,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedBy:     m.CreatedBy,
		CreatedByName: m.CreatedByName,
		ClosedBy:      m.ClosedBy,
		ClosedByName:  m.ClosedByName,
		V1LinkedRecords: domain.V1LinkedRecords{
			SalesIDs:   m.V1SalesIDs,
			CheckoutID: m.V1CheckoutID,
			RoomID:     m.V1RoomID,
		},
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		ServiceCenter: m.ServiceCenter,
		Notes:         m.Notes,
	}
}

// ToDomainFolioSlice converts a slice of model Folios to domain Folios
func ToDomainFolioSlice(ms []models.Folio) []domain.Folio {
	ds := make([]domain.Folio, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFolio(m)
	}
	return ds
}
