package mapping

import (
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
)

// ToModelLineItem converts a domain FolioLineItem to a model FolioLineItem
func ToModelLineItem(d domain.FolioLineItem) models.FolioLineItem {
	return models.FolioLineItem{
		ItemID:           d.ItemID,
		FolioID:          d.FolioID,
		CreatedAt:        d.CreatedAt,
		Description:      d.Description,
		ItemType:         string(d.ItemType),
		Quantity:         d.Quantity,
		UnitPrice:        d.UnitPrice,
		Subtotal:         d.Subtotal,
		DiscountAmount:   d.DiscountAmount,
		DiscountReason:   d.DiscountReason,
		TaxAmount:        d.TaxAmount,
		TaxRate:          d.TaxRate,
		TotalAmount:      d.TotalAmount,
		StaffID:          d.StaffID,
		StaffName:        d.StaffName,
		Category:         d.Category,
		V1SalesID:        d.V1SalesID,
		V1MenuItemID:     d.V1MenuItemID,
		SourceModule:     string(d.SourceModule),
		IsOfflineCreated: d.IsOfflineCreated,
		SyncedAt:         d.SyncedAt,
		IsLocked:         d.IsLocked,
	}
}

// ToDomainLineItem converts a model FolioLineItem to a domain FolioLineItem
func ToDomainLineItem(m models.FolioLineItem) domain.FolioLineItem {
	return domain.FolioLineItem{
		ItemID:           m.ItemID,
		FolioID:          m.FolioID,
		CreatedAt:        m.CreatedAt,
		Description:      m.Description,
		ItemType:         domain.LineItemType(m.ItemType),
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		Subtotal:         m.Subtotal,
		DiscountAmount:   m.DiscountAmount,
		DiscountReason:   m.DiscountReason,
		TaxAmount:        m.TaxAmount,
		TaxRate:          m.TaxRate,
		TotalAmount:      m.TotalAmount,
		StaffID:          m.StaffID,
		StaffName:        m.StaffName,
		Category:         m.Category,
		V1SalesID:        m.V1SalesID,
		V1MenuItemID:     m.V1MenuItemID,
		SourceModule:     domain.SourceModule(m.SourceModule),
		IsOfflineCreated: m.IsOfflineCreated,
		SyncedAt:         m.SyncedAt,
		IsLocked:         m.IsLocked,
	}
}

// ToDomainLineItemSlice converts a slice of model line items to domain line items
func ToDomainLineItemSlice(ms []models.FolioLineItem) []domain.FolioLineItem {
	ds := make([]domain.FolioLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
