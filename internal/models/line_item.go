package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioLineItem is the folio_line_items table row. Rows are insert-only;
// the only column ever updated is is_locked, flipped once at folio closure.
type FolioLineItem struct {
	ItemID    string    `json:"itemId"` // Primary Key, e.g. "FLI-{uuid}"
	FolioID   string    `json:"folioId"`
	CreatedAt time.Time `json:"createdAt"`

	Description string `json:"description"`
	ItemType    string `json:"itemType"`

	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`

	DiscountAmount decimal.Decimal `json:"discountAmount"`
	DiscountReason *string         `json:"discountReason"`

	TaxAmount decimal.Decimal `json:"taxAmount"`
	TaxRate   decimal.Decimal `json:"taxRate"`

	TotalAmount decimal.Decimal `json:"totalAmount"`

	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`

	Category string `json:"category"`

	V1SalesID    *string `json:"v1SalesId"`
	V1MenuItemID *string `json:"v1MenuItemId"`

	SourceModule     string     `json:"sourceModule"`
	IsOfflineCreated bool       `json:"isOfflineCreated"`
	SyncedAt         *time.Time `json:"syncedAt"`

	IsLocked bool `json:"isLocked"`
}
