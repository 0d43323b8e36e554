package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// --- Mock FolioRepository ---

type MockFolioRepository struct {
	mock.Mock
}

func (m *MockFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) FindActiveFolioForRoom(ctx context.Context, roomID string) (*domain.Folio, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) ListFolios(ctx context.Context, filter portsrepo.FolioListFilter, limit int, nextToken *string) ([]domain.Folio, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Folio), token, args.Error(2)
}

func (m *MockFolioRepository) FindLineItemsByFolioID(ctx context.Context, folioID string) ([]domain.FolioLineItem, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FolioLineItem), args.Error(1)
}

func (m *MockFolioRepository) FindPaymentsByFolioID(ctx context.Context, folioID string) ([]domain.Payment, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockFolioRepository) CreateFolio(ctx context.Context, folio domain.Folio, items []domain.FolioLineItem) (*domain.Folio, error) {
	args := m.Called(ctx, folio, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) CreateSettledFolio(ctx context.Context, folio domain.Folio, items []domain.FolioLineItem, payment domain.Payment) (*domain.Folio, *domain.Invoice, bool, error) {
	args := m.Called(ctx, folio, items, payment)
	var f *domain.Folio
	if args.Get(0) != nil {
		f = args.Get(0).(*domain.Folio)
	}
	var inv *domain.Invoice
	if args.Get(1) != nil {
		inv = args.Get(1).(*domain.Invoice)
	}
	return f, inv, args.Bool(2), args.Error(3)
}

func (m *MockFolioRepository) AddLineItem(ctx context.Context, folioID string, item domain.FolioLineItem) (*domain.Folio, bool, error) {
	args := m.Called(ctx, folioID, item)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Folio), args.Bool(1), args.Error(2)
}

func (m *MockFolioRepository) AddPayment(ctx context.Context, folioID string, payment domain.Payment, actor domain.Actor) (*portsrepo.PaymentOutcome, error) {
	args := m.Called(ctx, folioID, payment, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.PaymentOutcome), args.Error(1)
}

func (m *MockFolioRepository) CloseFolioWithInvoice(ctx context.Context, folioID string, method domain.PaymentMethod, amountPaid decimal.Decimal, actor domain.Actor, v1CheckoutID *string, closedAt time.Time) (*domain.Invoice, error) {
	args := m.Called(ctx, folioID, method, amountPaid, actor, v1CheckoutID, closedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockFolioRepository) VoidFolio(ctx context.Context, folioID string, reason string, actor domain.Actor, voidedAt time.Time) error {
	args := m.Called(ctx, folioID, reason, actor, voidedAt)
	return args.Error(0)
}

func (m *MockFolioRepository) LockLineItems(ctx context.Context, folioID string) error {
	args := m.Called(ctx, folioID)
	return args.Error(0)
}

var _ portsrepo.FolioRepositoryFacade = (*MockFolioRepository)(nil)

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, search *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, search, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Invoice), token, args.Error(2)
}

func (m *MockInvoiceRepository) RecordPrint(ctx context.Context, invoiceID string, printedAt time.Time) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, printedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) RecordEmailed(ctx context.Context, invoiceID string, emailedTo string) error {
	args := m.Called(ctx, invoiceID, emailedTo)
	return args.Error(0)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Mock LegacyBridgeRepository ---

type MockLegacyRepository struct {
	mock.Mock
}

func (m *MockLegacyRepository) LinkSaleToFolio(ctx context.Context, salesID string, folioID string) error {
	args := m.Called(ctx, salesID, folioID)
	return args.Error(0)
}

var _ portsrepo.LegacyBridgeRepositoryFacade = (*MockLegacyRepository)(nil)

// --- Mock StaffRepository ---

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

// --- Mock AuditService ---

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry domain.AuditLog) {
	m.Called(ctx, entry)
}

func (m *MockAuditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAuditLogsResponse), args.Error(1)
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

// --- Mock OfflineQueue ---

type MockOfflineQueue struct {
	mock.Mock
}

func (m *MockOfflineQueue) Enqueue(ctx context.Context, op dto.QueuedOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOfflineQueue) Pending(ctx context.Context) ([]dto.QueuedOperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QueuedOperation), args.Error(1)
}

func (m *MockOfflineQueue) Ack(ctx context.Context, correlationID string) error {
	args := m.Called(ctx, correlationID)
	return args.Error(0)
}

func (m *MockOfflineQueue) Depth(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.OfflineQueue = (*MockOfflineQueue)(nil)

// --- Mock FolioService ---

type MockFolioService struct {
	mock.Mock
}

func (m *MockFolioService) CreateBarSale(ctx context.Context, req dto.CreateBarSaleRequest, actor domain.Actor) (*portssvc.BarSaleResult, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.BarSaleResult), args.Error(1)
}

func (m *MockFolioService) CreateRoomFolio(ctx context.Context, req dto.CreateRoomFolioRequest, actor domain.Actor) (*portssvc.RoomFolioResult, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.RoomFolioResult), args.Error(1)
}

func (m *MockFolioService) OpenBarFolio(ctx context.Context, req dto.OpenBarFolioRequest, actor domain.Actor) (*domain.Folio, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) AddLineItem(ctx context.Context, folioID string, req dto.AddLineItemRequest, actor domain.Actor) (*domain.FolioLineItem, *domain.Folio, error) {
	args := m.Called(ctx, folioID, req, actor)
	var item *domain.FolioLineItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.FolioLineItem)
	}
	var folio *domain.Folio
	if args.Get(1) != nil {
		folio = args.Get(1).(*domain.Folio)
	}
	return item, folio, args.Error(2)
}

func (m *MockFolioService) GetFolioDetail(ctx context.Context, folioID string) (*domain.Folio, []domain.FolioLineItem, []domain.Payment, error) {
	args := m.Called(ctx, folioID)
	var folio *domain.Folio
	if args.Get(0) != nil {
		folio = args.Get(0).(*domain.Folio)
	}
	var items []domain.FolioLineItem
	if args.Get(1) != nil {
		items = args.Get(1).([]domain.FolioLineItem)
	}
	var payments []domain.Payment
	if args.Get(2) != nil {
		payments = args.Get(2).([]domain.Payment)
	}
	return folio, items, payments, args.Error(3)
}

func (m *MockFolioService) ListFolios(ctx context.Context, params dto.ListFoliosParams) (*dto.ListFoliosResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListFoliosResponse), args.Error(1)
}

func (m *MockFolioService) GetActiveFolioForRoom(ctx context.Context, roomID string) (*domain.Folio, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) VoidFolio(ctx context.Context, folioID string, reason string, actor domain.Actor) error {
	args := m.Called(ctx, folioID, reason, actor)
	return args.Error(0)
}

func (m *MockFolioService) LinkSaleToFolio(ctx context.Context, salesID string, folioID string) error {
	args := m.Called(ctx, salesID, folioID)
	return args.Error(0)
}

var _ portssvc.FolioSvcFacade = (*MockFolioService)(nil)

// --- Mock PaymentService ---

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) AddPaymentToFolio(ctx context.Context, folioID string, req dto.AddPaymentRequest, actor domain.Actor) (*portsrepo.PaymentOutcome, error) {
	args := m.Called(ctx, folioID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.PaymentOutcome), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)
