package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

var (
	ErrNoItems              = errors.New("sale must have at least one item")
	ErrNonPositiveQuantity  = errors.New("item quantity must be positive")
	ErrNegativeUnitPrice    = errors.New("item unit price cannot be negative")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrRoomOccupied         = errors.New("room already has an active folio")
	ErrDiscountExceedsLine  = errors.New("discount cannot exceed the line subtotal")
	ErrVoidReasonMissing    = errors.New("void reason is required")
)

// folioService provides folio creation, append, lookup and void operations.
type folioService struct {
	folioRepo portsrepo.FolioRepositoryFacade
	legacy    portsrepo.LegacyBridgeRepositoryFacade
	auditSvc  portssvc.AuditSvcFacade
	taxRate   decimal.Decimal
	now       func() time.Time
}

// NewFolioService creates a new FolioService. taxRate is the fractional VAT
// rate applied to taxable lines (0 disables tax).
func NewFolioService(folioRepo portsrepo.FolioRepositoryFacade, legacy portsrepo.LegacyBridgeRepositoryFacade, auditSvc portssvc.AuditSvcFacade, taxRate decimal.Decimal) portssvc.FolioSvcFacade {
	return &folioService{
		folioRepo: folioRepo,
		legacy:    legacy,
		auditSvc:  auditSvc,
		taxRate:   taxRate,
		now:       time.Now,
	}
}

// Ensure folioService implements the portssvc.FolioSvcFacade interface
var _ portssvc.FolioSvcFacade = (*folioService)(nil)

// barSaleFolioID derives the folio ID from the sale ID so a replayed sale
// collides with its own earlier write instead of creating a duplicate.
func barSaleFolioID(saleID string) string {
	return "FOLIO-BAR-" + saleID
}

func newFolioID() string {
	return "FOLIO-" + uuid.NewString()
}

func newItemID() string {
	return "ITEM-" + uuid.NewString()
}

// taxFor returns the tax amount on a line's discounted subtotal.
func (s *folioService) taxFor(subtotal, discount decimal.Decimal) decimal.Decimal {
	if s.taxRate.IsZero() {
		return decimal.Zero
	}
	return subtotal.Sub(discount).Mul(s.taxRate).Round(2)
}

func folioSnapshot(f *domain.Folio) map[string]any {
	return map[string]any{
		"folioId":       f.FolioID,
		"folioNumber":   f.FolioNumber,
		"status":        string(f.Status),
		"grandTotal":    f.GrandTotal.String(),
		"amountPaid":    f.AmountPaid.String(),
		"paymentStatus": string(f.PaymentStatus),
	}
}

// CreateBarSale creates a CLOSED BAR folio plus line items plus invoice for
// a sale that settled at order time. Idempotent on req.SaleID: a replay
// returns the original records unchanged.
func (s *folioService) CreateBarSale(ctx context.Context, req dto.CreateBarSaleRequest, actor domain.Actor) (*portssvc.BarSaleResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, apperrors.NewAppError(400, ErrNoItems.Error(), apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperrors.NewAppError(400, ErrInvalidPaymentMethod.Error(), apperrors.ErrValidation)
	}

	now := s.now()
	folioID := barSaleFolioID(req.SaleID)

	items := make([]domain.FolioLineItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		if !reqItem.Quantity.IsPositive() {
			return nil, apperrors.NewAppError(400, ErrNonPositiveQuantity.Error(), apperrors.ErrValidation)
		}
		if reqItem.UnitPrice.IsNegative() {
			return nil, apperrors.NewAppError(400, ErrNegativeUnitPrice.Error(), apperrors.ErrValidation)
		}

		itemType := domain.ItemDrink
		if reqItem.ItemType != "" {
			itemType = domain.LineItemType(reqItem.ItemType)
		}
		li := domain.FolioLineItem{
			ItemID:       newItemID(),
			FolioID:      folioID,
			CreatedAt:    now,
			Description:  reqItem.Name,
			ItemType:     itemType,
			Quantity:     reqItem.Quantity,
			UnitPrice:    reqItem.UnitPrice,
			TaxRate:      s.taxRate,
			StaffID:      actor.StaffID,
			StaffName:    actor.DisplayName,
			Category:     reqItem.Category,
			V1MenuItemID: reqItem.MenuItemID,
			SourceModule: domain.SourcePOS,
			IsLocked:     true,
		}
		li.TaxAmount = s.taxFor(li.Quantity.Mul(li.UnitPrice), decimal.Zero)
		li.ComputeLineAmounts()
		saleID := req.SaleID
		li.V1SalesID = &saleID
		items = append(items, li)
	}

	subtotal, discount, tax, grand := domain.SumLineItemTotals(items)

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Walk-in Customer"
	}
	serviceCenter := req.ServiceCenter
	if serviceCenter == "" {
		serviceCenter = "bar"
	}

	closedAt := now
	folio := domain.Folio{
		FolioID:       folioID,
		FolioType:     domain.FolioBar,
		Status:        domain.FolioClosed,
		CreatedAt:     now,
		ClosedAt:      &closedAt,
		OwnerName:     customerName,
		RoomID:        req.RoomID,
		Subtotal:      subtotal,
		DiscountTotal: discount,
		TaxTotal:      tax,
		GrandTotal:    grand,
		AmountPaid:    grand,
		PaymentStatus: domain.PaymentPaid,
		CreatedBy:     actor.StaffID,
		CreatedByName: actor.DisplayName,
		ClosedBy:      &actor.StaffID,
		ClosedByName:  &actor.DisplayName,
		V1LinkedRecords: domain.V1LinkedRecords{
			SalesIDs: []string{req.SaleID},
			RoomID:   req.RoomID,
		},
		ServiceCenter: &serviceCenter,
	}

	payment := domain.Payment{
		PaymentID:     "PAY-" + uuid.NewString(),
		FolioID:       folioID,
		Amount:        grand,
		Method:        req.PaymentMethod,
		CreatedAt:     now,
		CreatedBy:     actor.StaffID,
		CreatedByName: actor.DisplayName,
	}

	savedFolio, invoice, created, err := s.folioRepo.CreateSettledFolio(ctx, folio, items, payment)
	if err != nil {
		logger.Error("Failed to create bar sale folio", slog.String("sale_id", req.SaleID), slog.String("error", err.Error()))
		return nil, err
	}

	if created {
		s.auditSvc.Record(ctx, domain.AuditLog{
			Action:     domain.AuditFolioCreate,
			EntityType: domain.EntityFolio,
			EntityID:   savedFolio.FolioID,
			UserID:     actor.StaffID,
			UserName:   actor.DisplayName,
			UserRole:   string(actor.Role),
			NewState:   folioSnapshot(savedFolio),
		})
		if invoice != nil {
			s.auditSvc.Record(ctx, domain.AuditLog{
				Action:     domain.AuditInvoiceCreate,
				EntityType: domain.EntityInvoice,
				EntityID:   invoice.InvoiceID,
				UserID:     actor.StaffID,
				UserName:   actor.DisplayName,
				UserRole:   string(actor.Role),
				NewState: map[string]any{
					"invoiceNumber": invoice.InvoiceNumber,
					"folioId":       invoice.FolioID,
					"grandTotal":    invoice.GrandTotal.String(),
				},
			})
		}
		if linkErr := s.legacy.LinkSaleToFolio(ctx, req.SaleID, savedFolio.FolioID); linkErr != nil {
			// The sale record bridge is best effort; the folio is the source
			// of truth either way.
			logger.Warn("Failed to link legacy sale to folio", slog.String("sale_id", req.SaleID), slog.String("error", linkErr.Error()))
		}
	} else {
		logger.Info("Bar sale already processed, returning existing records", slog.String("sale_id", req.SaleID))
	}

	return &portssvc.BarSaleResult{Folio: savedFolio, Invoice: invoice, Created: created}, nil
}

// CreateRoomFolio opens a ROOM folio at check-in with the initial room
// charge line item (nights x rate). Fails if the room already has an active
// folio.
func (s *folioService) CreateRoomFolio(ctx context.Context, req dto.CreateRoomFolioRequest, actor domain.Actor) (*portssvc.RoomFolioResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.NightsBooked < 1 {
		return nil, apperrors.NewAppError(400, "nightsBooked must be at least 1", apperrors.ErrValidation)
	}
	if req.RoomPrice.IsNegative() {
		return nil, apperrors.NewAppError(400, ErrNegativeUnitPrice.Error(), apperrors.ErrValidation)
	}

	existing, err := s.folioRepo.FindActiveFolioForRoom(ctx, req.RoomID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, ErrRoomOccupied.Error()+": "+existing.FolioID, apperrors.ErrConflict)
	}

	now := s.now()
	folioID := newFolioID()
	checkIn := now
	nights := req.NightsBooked
	adults := req.Adults
	children := req.Children

	roomCharge := domain.FolioLineItem{
		ItemID:       newItemID(),
		FolioID:      folioID,
		CreatedAt:    now,
		Description:  "Room " + req.RoomNumber + " (" + req.RoomType + ")",
		ItemType:     domain.ItemRoomCharge,
		Quantity:     decimal.NewFromInt(int64(nights)),
		UnitPrice:    req.RoomPrice,
		TaxRate:      s.taxRate,
		StaffID:      actor.StaffID,
		StaffName:    actor.DisplayName,
		Category:     "accommodation",
		SourceModule: domain.SourceReception,
	}
	roomCharge.TaxAmount = s.taxFor(roomCharge.Quantity.Mul(roomCharge.UnitPrice), decimal.Zero)
	roomCharge.ComputeLineAmounts()

	folio := domain.Folio{
		FolioID:       folioID,
		FolioType:     domain.FolioRoom,
		Status:        domain.FolioOpen,
		CreatedAt:     now,
		OwnerName:     req.GuestName,
		OwnerContact:  req.GuestContact,
		RoomID:        &req.RoomID,
		RoomNumber:    &req.RoomNumber,
		CheckInDate:   &checkIn,
		NightsBooked:  &nights,
		Adults:        &adults,
		Children:      &children,
		Subtotal:      roomCharge.Subtotal,
		DiscountTotal: decimal.Zero,
		TaxTotal:      roomCharge.TaxAmount,
		GrandTotal:    roomCharge.TotalAmount,
		AmountPaid:    decimal.Zero,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedBy:     actor.StaffID,
		CreatedByName: actor.DisplayName,
		V1LinkedRecords: domain.V1LinkedRecords{
			RoomID: &req.RoomID,
		},
	}

	savedFolio, err := s.folioRepo.CreateFolio(ctx, folio, []domain.FolioLineItem{roomCharge})
	if err != nil {
		logger.Error("Failed to create room folio", slog.String("room_id", req.RoomID), slog.String("error", err.Error()))
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:     domain.AuditFolioCreate,
		EntityType: domain.EntityFolio,
		EntityID:   savedFolio.FolioID,
		UserID:     actor.StaffID,
		UserName:   actor.DisplayName,
		UserRole:   string(actor.Role),
		NewState:   folioSnapshot(savedFolio),
	})

	return &portssvc.RoomFolioResult{Folio: savedFolio, RoomChargeItemID: roomCharge.ItemID}, nil
}

// OpenBarFolio opens an empty BAR folio for a running tab.
func (s *folioService) OpenBarFolio(ctx context.Context, req dto.OpenBarFolioRequest, actor domain.Actor) (*domain.Folio, error) {
	now := s.now()

	label := req.Label
	if label == "" {
		label = "Walk-in Customer"
	}
	serviceCenter := req.ServiceCenter
	if serviceCenter == "" {
		serviceCenter = "bar"
	}

	folio := domain.Folio{
		FolioID:       newFolioID(),
		FolioType:     domain.FolioBar,
		Status:        domain.FolioOpen,
		CreatedAt:     now,
		OwnerName:     label,
		Subtotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		TaxTotal:      decimal.Zero,
		GrandTotal:    decimal.Zero,
		AmountPaid:    decimal.Zero,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedBy:     actor.StaffID,
		CreatedByName: actor.DisplayName,
		ServiceCenter: &serviceCenter,
	}

	savedFolio, err := s.folioRepo.CreateFolio(ctx, folio, nil)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:     domain.AuditOrderOpen,
		EntityType: domain.EntityFolio,
		EntityID:   savedFolio.FolioID,
		UserID:     actor.StaffID,
		UserName:   actor.DisplayName,
		UserRole:   string(actor.Role),
		NewState:   folioSnapshot(savedFolio),
	})

	return savedFolio, nil
}

// AddLineItem appends a charge to an OPEN or PART_PAID folio. Derived
// amounts are always recomputed here; client-supplied totals are ignored.
func (s *folioService) AddLineItem(ctx context.Context, folioID string, req dto.AddLineItemRequest, actor domain.Actor) (*domain.FolioLineItem, *domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Quantity.IsPositive() {
		return nil, nil, apperrors.NewAppError(400, ErrNonPositiveQuantity.Error(), apperrors.ErrValidation)
	}
	// Negative unit prices are allowed only on correcting adjustments.
	if req.UnitPrice.IsNegative() && req.ItemType != domain.ItemAdjustment {
		return nil, nil, apperrors.NewAppError(400, ErrNegativeUnitPrice.Error(), apperrors.ErrValidation)
	}
	if req.DiscountAmount.IsNegative() {
		return nil, nil, apperrors.NewAppError(400, "discount cannot be negative", apperrors.ErrValidation)
	}

	subtotal := req.Quantity.Mul(req.UnitPrice)
	if req.DiscountAmount.GreaterThan(subtotal.Abs()) {
		return nil, nil, apperrors.NewAppError(400, ErrDiscountExceedsLine.Error(), apperrors.ErrValidation)
	}

	sourceModule := req.SourceModule
	if sourceModule == "" {
		sourceModule = domain.SourceSystem
	}

	// Offline replay pins the item ID to the operation's correlation ID, so
	// a retried operation targets the same row instead of minting a new one.
	itemID := newItemID()
	replayed := req.CorrelationID != ""
	if replayed {
		itemID = "ITEM-" + req.CorrelationID
	}

	item := domain.FolioLineItem{
		ItemID:         itemID,
		FolioID:        folioID,
		CreatedAt:      s.now(),
		Description:    req.Description,
		ItemType:       req.ItemType,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		DiscountAmount: req.DiscountAmount,
		DiscountReason: req.DiscountReason,
		StaffID:        actor.StaffID,
		StaffName:      actor.DisplayName,
		Category:       req.Category,
		V1SalesID:      req.V1SalesID,
		V1MenuItemID:   req.V1MenuItemID,
		SourceModule:   sourceModule,
	}
	if replayed {
		item.IsOfflineCreated = true
		syncedAt := s.now()
		item.SyncedAt = &syncedAt
	}
	if req.Taxable {
		item.TaxRate = s.taxRate
		item.TaxAmount = s.taxFor(subtotal, req.DiscountAmount)
	}
	item.ComputeLineAmounts()

	updatedFolio, inserted, err := s.folioRepo.AddLineItem(ctx, folioID, item)
	if err != nil {
		logger.Error("Failed to add line item", slog.String("folio_id", folioID), slog.String("error", err.Error()))
		return nil, nil, err
	}
	if !inserted {
		// An earlier replay attempt already landed this charge; nothing was
		// written and the first application was already audited.
		return &item, updatedFolio, nil
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:     domain.AuditLineItemAdd,
		EntityType: domain.EntityLineItem,
		EntityID:   item.ItemID,
		UserID:     actor.StaffID,
		UserName:   actor.DisplayName,
		UserRole:   string(actor.Role),
		NewState: map[string]any{
			"folioId":     folioID,
			"description": item.Description,
			"totalAmount": item.TotalAmount.String(),
		},
	})

	if req.V1SalesID != nil {
		if linkErr := s.legacy.LinkSaleToFolio(ctx, *req.V1SalesID, folioID); linkErr != nil {
			logger.Warn("Failed to link legacy sale to folio", slog.String("sales_id", *req.V1SalesID), slog.String("error", linkErr.Error()))
		}
	}

	return &item, updatedFolio, nil
}

// GetFolioDetail returns a folio with its line items and payments.
func (s *folioService) GetFolioDetail(ctx context.Context, folioID string) (*domain.Folio, []domain.FolioLineItem, []domain.Payment, error) {
	folio, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.folioRepo.FindLineItemsByFolioID(ctx, folioID)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.folioRepo.FindPaymentsByFolioID(ctx, folioID)
	if err != nil {
		return nil, nil, nil, err
	}
	return folio, items, payments, nil
}

// ListFolios returns a filtered, paginated folio list.
func (s *folioService) ListFolios(ctx context.Context, params dto.ListFoliosParams) (*dto.ListFoliosResponse, error) {
	filter := portsrepo.FolioListFilter{}
	if params.Status != nil && *params.Status != "" {
		status := domain.FolioStatus(*params.Status)
		filter.Status = &status
	}
	if params.FolioType != nil && *params.FolioType != "" {
		folioType := domain.FolioType(*params.FolioType)
		filter.FolioType = &folioType
	}
	filter.ServiceCenter = params.ServiceCenter

	folios, nextToken, err := s.folioRepo.ListFolios(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListFoliosResponse{
		Folios:    dto.ToFolioResponses(folios),
		NextToken: nextToken,
	}, nil
}

// GetActiveFolioForRoom returns the single OPEN ROOM folio for a room.
func (s *folioService) GetActiveFolioForRoom(ctx context.Context, roomID string) (*domain.Folio, error) {
	return s.folioRepo.FindActiveFolioForRoom(ctx, roomID)
}

// VoidFolio voids an OPEN folio. Irreversible; no invoice is produced and
// the line items are locked as-is for the record.
func (s *folioService) VoidFolio(ctx context.Context, folioID string, reason string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return apperrors.NewAppError(400, ErrVoidReasonMissing.Error(), apperrors.ErrValidation)
	}

	previous, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		return err
	}

	if err := s.folioRepo.VoidFolio(ctx, folioID, reason, actor, s.now()); err != nil {
		logger.Error("Failed to void folio", slog.String("folio_id", folioID), slog.String("error", err.Error()))
		return err
	}

	if err := s.folioRepo.LockLineItems(ctx, folioID); err != nil {
		logger.Warn("Failed to lock line items after void", slog.String("folio_id", folioID), slog.String("error", err.Error()))
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:        domain.AuditFolioVoid,
		EntityType:    domain.EntityFolio,
		EntityID:      folioID,
		UserID:        actor.StaffID,
		UserName:      actor.DisplayName,
		UserRole:      string(actor.Role),
		PreviousState: folioSnapshot(previous),
		NewState: map[string]any{
			"status": string(domain.FolioVoided),
			"reason": reason,
		},
	})

	return nil
}

// LinkSaleToFolio stamps a legacy sales record with the folio that absorbed
// it. Migration-period bridge only.
func (s *folioService) LinkSaleToFolio(ctx context.Context, salesID string, folioID string) error {
	if _, err := s.folioRepo.FindFolioByID(ctx, folioID); err != nil {
		return err
	}
	return s.legacy.LinkSaleToFolio(ctx, salesID, folioID)
}
