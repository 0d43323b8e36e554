package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemType classifies a charge on a folio.
type LineItemType string

const (
	ItemRoomCharge LineItemType = "ROOM_CHARGE"
	ItemBarOrder   LineItemType = "BAR_ORDER"
	ItemLaundry    LineItemType = "LAUNDRY"
	ItemService    LineItemType = "SERVICE"
	ItemFood       LineItemType = "FOOD"
	ItemDrink      LineItemType = "DRINK"
	ItemAdjustment LineItemType = "ADJUSTMENT"
)

// SourceModule identifies which surrounding module originated a line item.
type SourceModule string

const (
	SourcePOS        SourceModule = "POS"
	SourceReception  SourceModule = "RECEPTION"
	SourceLaundry    SourceModule = "LAUNDRY"
	SourceRestaurant SourceModule = "RESTAURANT"
	SourceSystem     SourceModule = "SYSTEM"
)

// FolioLineItem is a single charge on a folio. Line items are create-only:
// they are never updated or deleted. Corrections are recorded as new
// negative-amount ADJUSTMENT items. IsLocked flips true permanently once
// the parent folio closes or voids.
type FolioLineItem struct {
	ItemID    string    `json:"itemId"`
	FolioID   string    `json:"folioId"`
	CreatedAt time.Time `json:"createdAt"`

	Description string       `json:"description"`
	ItemType    LineItemType `json:"itemType"`

	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	// Quantity x UnitPrice
	Subtotal decimal.Decimal `json:"subtotal"`

	DiscountAmount decimal.Decimal `json:"discountAmount"`
	DiscountReason *string         `json:"discountReason"`

	TaxAmount decimal.Decimal `json:"taxAmount"`
	TaxRate   decimal.Decimal `json:"taxRate"`

	// Subtotal - DiscountAmount + TaxAmount
	TotalAmount decimal.Decimal `json:"totalAmount"`

	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`

	Category string `json:"category"`

	V1SalesID    *string `json:"v1SalesId"`
	V1MenuItemID *string `json:"v1MenuItemId"`

	SourceModule     SourceModule `json:"sourceModule"`
	IsOfflineCreated bool         `json:"isOfflineCreated"`
	SyncedAt         *time.Time   `json:"syncedAt"`

	IsLocked bool `json:"isLocked"`
}

// ComputeLineAmounts fills Subtotal and TotalAmount from quantity, unit
// price, discount and tax. Callers set the inputs; the derived fields are
// never accepted from outside.
func (li *FolioLineItem) ComputeLineAmounts() {
	li.Subtotal = li.Quantity.Mul(li.UnitPrice)
	li.TotalAmount = li.Subtotal.Sub(li.DiscountAmount).Add(li.TaxAmount)
}

// SumLineItemTotals returns the aggregate contribution of the given items:
// subtotal, discount, tax and grand total.
func SumLineItemTotals(items []FolioLineItem) (subtotal, discount, tax, grand decimal.Decimal) {
	for _, li := range items {
		subtotal = subtotal.Add(li.Subtotal)
		discount = discount.Add(li.DiscountAmount)
		tax = tax.Add(li.TaxAmount)
		grand = grand.Add(li.TotalAmount)
	}
	return subtotal, discount, tax, grand
}
