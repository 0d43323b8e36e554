package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// BarSaleItem is one ordered item of an instant bar sale.
type BarSaleItem struct {
	Name       string          `json:"name" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
	Category   string          `json:"category"`
	ItemType   string          `json:"itemType"` // FOOD or DRINK, defaults to DRINK
	MenuItemID *string         `json:"menuItemId"`
}

// CreateBarSaleRequest creates a CLOSED-immediately BAR folio plus invoice
// for a point-of-sale sale that settles at order time. SaleID doubles as
// the idempotency key: retries with the same SaleID return the original
// folio and invoice.
type CreateBarSaleRequest struct {
	SaleID        string               `json:"saleId" binding:"required"`
	CustomerName  string               `json:"customerName"`
	Items         []BarSaleItem        `json:"items" binding:"required,min=1,dive"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	ServiceCenter string               `json:"serviceCenter"`
	RoomID        *string              `json:"roomId"`
}

// CreateRoomFolioRequest opens a ROOM folio at check-in with the initial
// room charge (nights x rate).
type CreateRoomFolioRequest struct {
	RoomID       string          `json:"roomId" binding:"required"`
	RoomNumber   string          `json:"roomNumber" binding:"required"`
	RoomType     string          `json:"roomType"`
	RoomPrice    decimal.Decimal `json:"roomPrice" binding:"required"`
	GuestName    string          `json:"guestName" binding:"required"`
	GuestContact *string         `json:"guestContact"`
	NightsBooked int             `json:"nightsBooked" binding:"required,min=1"`
	Adults       int             `json:"adults"`
	Children     int             `json:"children"`
}

// OpenBarFolioRequest opens a running-tab BAR folio with zero items.
type OpenBarFolioRequest struct {
	Label         string `json:"label"` // e.g. "Table 5"
	ServiceCenter string `json:"serviceCenter"`
}

// AddLineItemRequest appends a charge to an open folio.
type AddLineItemRequest struct {
	Description    string              `json:"description" binding:"required"`
	ItemType       domain.LineItemType `json:"itemType" binding:"required"`
	Quantity       decimal.Decimal     `json:"quantity" binding:"required"`
	UnitPrice      decimal.Decimal     `json:"unitPrice" binding:"required"`
	Category       string              `json:"category"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
	DiscountReason *string             `json:"discountReason"`
	Taxable        bool                `json:"taxable"`
	V1SalesID      *string             `json:"v1SalesId"`
	V1MenuItemID   *string             `json:"v1MenuItemId"`
	SourceModule   domain.SourceModule `json:"sourceModule"`

	// Set only by offline replay, never from the wire. When present it pins
	// the item ID so a retried operation cannot create a second charge.
	CorrelationID string `json:"-"`
}

// LinkSaleRequest stamps a legacy v1 sales record with the folio that
// absorbed it.
type LinkSaleRequest struct {
	SalesID string `json:"salesId" binding:"required"`
}

// VoidFolioRequest voids an OPEN folio. Irreversible; no invoice is produced.
type VoidFolioRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListFoliosParams filters the folio list view.
type ListFoliosParams struct {
	Status        *string `form:"status"`
	FolioType     *string `form:"folioType"`
	ServiceCenter *string `form:"serviceCenter"`
	Limit         int     `form:"limit"`
	NextToken     *string `form:"nextToken"`
}

// FolioResponse is the wire shape of a folio.
type FolioResponse struct {
	FolioID       string             `json:"folioId"`
	FolioNumber   string             `json:"folioNumber"`
	FolioType     domain.FolioType   `json:"folioType"`
	Status        domain.FolioStatus `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	ClosedAt      *time.Time         `json:"closedAt,omitempty"`
	VoidedAt      *time.Time         `json:"voidedAt,omitempty"`
	OwnerName     string             `json:"ownerName"`
	RoomID        *string            `json:"roomId,omitempty"`
	RoomNumber    *string            `json:"roomNumber,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DiscountTotal decimal.Decimal    `json:"discountTotal"`
	TaxTotal      decimal.Decimal    `json:"taxTotal"`
	GrandTotal    decimal.Decimal    `json:"grandTotal"`
	AmountPaid    decimal.Decimal    `json:"amountPaid"`
	Balance       decimal.Decimal    `json:"balance"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	InvoiceID     *string            `json:"invoiceId,omitempty"`
	InvoiceNumber *string            `json:"invoiceNumber,omitempty"`
	ServiceCenter *string            `json:"serviceCenter,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
}

// LineItemResponse is the wire shape of a folio line item.
type LineItemResponse struct {
	ItemID         string              `json:"itemId"`
	FolioID        string              `json:"folioId"`
	CreatedAt      time.Time           `json:"createdAt"`
	Description    string              `json:"description"`
	ItemType       domain.LineItemType `json:"itemType"`
	Quantity       decimal.Decimal     `json:"quantity"`
	UnitPrice      decimal.Decimal     `json:"unitPrice"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
	TaxAmount      decimal.Decimal     `json:"taxAmount"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
	Category       string              `json:"category"`
	StaffName      string              `json:"staffName"`
	IsLocked       bool                `json:"isLocked"`
}

// FolioDetailResponse is a folio with its line items and payments, for the
// folio inspection view.
type FolioDetailResponse struct {
	Folio     FolioResponse      `json:"folio"`
	LineItems []LineItemResponse `json:"lineItems"`
	Payments  []PaymentResponse  `json:"payments"`
}

// ListFoliosResponse is a page of folios plus the continuation token.
type ListFoliosResponse struct {
	Folios    []FolioResponse `json:"folios"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// CreateFolioResponse reports the identifiers assigned at creation.
type CreateFolioResponse struct {
	FolioID       string  `json:"folioId"`
	FolioNumber   string  `json:"folioNumber"`
	InvoiceID     *string `json:"invoiceId,omitempty"`
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
	LineItemIDs   []string `json:"lineItemIds,omitempty"`
	// True when the write was captured locally for later sync instead of
	// reaching the store.
	Queued bool `json:"queued"`
}

// ToFolioResponse converts a domain folio to its wire shape.
func ToFolioResponse(f *domain.Folio) FolioResponse {
	return FolioResponse{
		FolioID:       f.FolioID,
		FolioNumber:   f.FolioNumber,
		FolioType:     f.FolioType,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
		ClosedAt:      f.ClosedAt,
		VoidedAt:      f.VoidedAt,
		OwnerName:     f.OwnerName,
		RoomID:        f.RoomID,
		RoomNumber:    f.RoomNumber,
		Subtotal:      f.Subtotal,
		DiscountTotal: f.DiscountTotal,
		TaxTotal:      f.TaxTotal,
		GrandTotal:    f.GrandTotal,
		AmountPaid:    f.AmountPaid,
		Balance:       f.Balance(),
		PaymentStatus: f.PaymentStatus,
		InvoiceID:     f.InvoiceID,
		InvoiceNumber: f.InvoiceNumber,
		ServiceCenter: f.ServiceCenter,
		Notes:         f.Notes,
	}
}

// ToFolioResponses converts a slice of domain folios.
func ToFolioResponses(folios []domain.Folio) []FolioResponse {
	out := make([]FolioResponse, len(folios))
	for i := range folios {
		out[i] = ToFolioResponse(&folios[i])
	}
	return out
}

// ToLineItemResponse converts a domain line item to its wire shape.
func ToLineItemResponse(li domain.FolioLineItem) LineItemResponse {
	return LineItemResponse{
		ItemID:         li.ItemID,
		FolioID:        li.FolioID,
		CreatedAt:      li.CreatedAt,
		Description:    li.Description,
		ItemType:       li.ItemType,
		Quantity:       li.Quantity,
		UnitPrice:      li.UnitPrice,
		Subtotal:       li.Subtotal,
		DiscountAmount: li.DiscountAmount,
		TaxAmount:      li.TaxAmount,
		TotalAmount:    li.TotalAmount,
		Category:       li.Category,
		StaffName:      li.StaffName,
		IsLocked:       li.IsLocked,
	}
}

// ToLineItemResponses converts a slice of domain line items.
func ToLineItemResponses(items []domain.FolioLineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, li := range items {
		out[i] = ToLineItemResponse(li)
	}
	return out
}
