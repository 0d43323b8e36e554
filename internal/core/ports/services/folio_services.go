package services

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// BarSaleResult reports the records created by an instant bar sale.
type BarSaleResult struct {
	Folio   *domain.Folio
	Invoice *domain.Invoice
	// False when the sale ID had already been processed and the existing
	// records were returned instead of new ones.
	Created bool
}

// RoomFolioResult reports the records created at check-in.
type RoomFolioResult struct {
	Folio            *domain.Folio
	RoomChargeItemID string
}

// FolioSvcFacade is the folio store: creation, append, lookup and void.
type FolioSvcFacade interface {
	// CreateBarSale creates a CLOSED BAR folio plus line items plus invoice
	// for a sale that settled at order time. Idempotent on req.SaleID.
	CreateBarSale(ctx context.Context, req dto.CreateBarSaleRequest, actor domain.Actor) (*BarSaleResult, error)

	// CreateRoomFolio opens a ROOM folio at check-in with the initial room
	// charge line item.
	CreateRoomFolio(ctx context.Context, req dto.CreateRoomFolioRequest, actor domain.Actor) (*RoomFolioResult, error)

	// OpenBarFolio opens an empty BAR folio for a running tab.
	OpenBarFolio(ctx context.Context, req dto.OpenBarFolioRequest, actor domain.Actor) (*domain.Folio, error)

	// AddLineItem appends a charge to an OPEN or PART_PAID folio.
	AddLineItem(ctx context.Context, folioID string, req dto.AddLineItemRequest, actor domain.Actor) (*domain.FolioLineItem, *domain.Folio, error)

	// GetFolioDetail returns a folio with its line items and payments.
	GetFolioDetail(ctx context.Context, folioID string) (*domain.Folio, []domain.FolioLineItem, []domain.Payment, error)

	// ListFolios returns a filtered, paginated folio list.
	ListFolios(ctx context.Context, params dto.ListFoliosParams) (*dto.ListFoliosResponse, error)

	// GetActiveFolioForRoom returns the single OPEN ROOM folio for a room.
	GetActiveFolioForRoom(ctx context.Context, roomID string) (*domain.Folio, error)

	// VoidFolio voids an OPEN folio. Irreversible.
	VoidFolio(ctx context.Context, folioID string, reason string, actor domain.Actor) error

	// LinkSaleToFolio stamps a legacy sales record with the folio that
	// absorbed it. Migration-period bridge only.
	LinkSaleToFolio(ctx context.Context, salesID string, folioID string) error
}
