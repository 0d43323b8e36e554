package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/core/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

type SyncServiceTestSuite struct {
	suite.Suite
	mockFolioSvc   *MockFolioService
	mockPaymentSvc *MockPaymentService
	mockQueue      *MockOfflineQueue
	service        portssvc.SyncSvcFacade
	actor          domain.Actor
}

func (suite *SyncServiceTestSuite) SetupTest() {
	suite.mockFolioSvc = new(MockFolioService)
	suite.mockPaymentSvc = new(MockPaymentService)
	suite.mockQueue = new(MockOfflineQueue)
	suite.service = services.NewSyncService(suite.mockFolioSvc, suite.mockPaymentSvc, suite.mockQueue)
	suite.actor = domain.Actor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff}
}

var errStoreDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// --- Submit paths ---

func (suite *SyncServiceTestSuite) TestSubmitBarSale_StoreReachable() {
	ctx := context.Background()
	req := dto.CreateBarSaleRequest{SaleID: "SALE-1", PaymentMethod: domain.MethodCash}
	result := &portssvc.BarSaleResult{Folio: &domain.Folio{FolioID: "FOLIO-BAR-SALE-1"}, Created: true}

	suite.mockFolioSvc.On("CreateBarSale", ctx, req, suite.actor).Return(result, nil).Once()

	got, queued, err := suite.service.SubmitBarSale(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.False(queued)
	suite.Equal(result, got)
	suite.mockQueue.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSubmitBarSale_StoreUnreachableQueues() {
	ctx := context.Background()
	req := dto.CreateBarSaleRequest{SaleID: "SALE-1", PaymentMethod: domain.MethodCash}

	suite.mockFolioSvc.On("CreateBarSale", ctx, req, suite.actor).Return(nil, errStoreDown).Once()

	var capturedOp dto.QueuedOperation
	suite.mockQueue.On("Enqueue", ctx, mock.AnythingOfType("dto.QueuedOperation")).
		Run(func(args mock.Arguments) { capturedOp = args.Get(1).(dto.QueuedOperation) }).
		Return(nil).
		Once()

	got, queued, err := suite.service.SubmitBarSale(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.True(queued)
	suite.Nil(got)

	suite.Equal(dto.OpBarSale, capturedOp.Kind)
	suite.NotEmpty(capturedOp.CorrelationID)
	suite.WithinDuration(time.Now(), capturedOp.EnqueuedAt, time.Second)
	suite.Equal("STAFF-1", capturedOp.Actor.StaffID)
	suite.Require().NotNil(capturedOp.BarSale)
	suite.Equal("SALE-1", capturedOp.BarSale.SaleID)
}

func (suite *SyncServiceTestSuite) TestSubmitBarSale_ValidationErrorNeverQueued() {
	ctx := context.Background()
	req := dto.CreateBarSaleRequest{SaleID: "SALE-1"}
	valErr := apperrors.NewAppError(400, "unsupported payment method", apperrors.ErrValidation)

	suite.mockFolioSvc.On("CreateBarSale", ctx, req, suite.actor).Return(nil, valErr).Once()

	got, queued, err := suite.service.SubmitBarSale(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.False(queued)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQueue.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSubmitCharge_ConflictNeverQueued() {
	ctx := context.Background()
	req := dto.AddLineItemRequest{Description: "Club Beer", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(15)}
	conflictErr := apperrors.NewAppError(409, "folio is closed", apperrors.ErrConflict)

	suite.mockFolioSvc.On("AddLineItem", ctx, "FOLIO-1", req, suite.actor).Return(nil, nil, conflictErr).Once()

	_, queued, err := suite.service.SubmitCharge(ctx, "FOLIO-1", req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.False(queued)
	suite.mockQueue.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSubmitPayment_StoreUnreachableQueues() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(50), Method: domain.MethodCash}

	suite.mockPaymentSvc.On("AddPaymentToFolio", ctx, "FOLIO-1", req, suite.actor).Return(nil, errStoreDown).Once()

	var capturedOp dto.QueuedOperation
	suite.mockQueue.On("Enqueue", ctx, mock.AnythingOfType("dto.QueuedOperation")).
		Run(func(args mock.Arguments) { capturedOp = args.Get(1).(dto.QueuedOperation) }).
		Return(nil).
		Once()

	outcome, queued, err := suite.service.SubmitPayment(ctx, "FOLIO-1", req, suite.actor)

	suite.Require().NoError(err)
	suite.True(queued)
	suite.Nil(outcome)
	suite.Equal(dto.OpPayment, capturedOp.Kind)
	suite.Equal("FOLIO-1", capturedOp.FolioID)
	suite.Require().NotNil(capturedOp.Payment)
}

func (suite *SyncServiceTestSuite) TestSubmitVoid_QueueFailureSurfacesCause() {
	ctx := context.Background()
	req := dto.VoidFolioRequest{Reason: "wrong table"}

	suite.mockFolioSvc.On("VoidFolio", ctx, "FOLIO-1", "wrong table", suite.actor).Return(errStoreDown).Once()
	suite.mockQueue.On("Enqueue", ctx, mock.AnythingOfType("dto.QueuedOperation")).Return(errors.New("disk full")).Once()

	queued, err := suite.service.SubmitVoid(ctx, "FOLIO-1", req, suite.actor)

	// Neither the store nor the queue took the write.
	suite.Require().Error(err)
	suite.False(queued)
	suite.Equal(errStoreDown, err)
}

// --- Replay ---

func queuedBarSaleOp(correlationID, saleID string) dto.QueuedOperation {
	return dto.QueuedOperation{
		CorrelationID: correlationID,
		Kind:          dto.OpBarSale,
		EnqueuedAt:    time.Now(),
		Actor:         dto.QueuedActor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff},
		BarSale:       &dto.CreateBarSaleRequest{SaleID: saleID, PaymentMethod: domain.MethodCash},
	}
}

func (suite *SyncServiceTestSuite) TestReplay_DrainsInOrder() {
	ctx := context.Background()
	ops := []dto.QueuedOperation{
		queuedBarSaleOp("corr-1", "SALE-1"),
		queuedBarSaleOp("corr-2", "SALE-2"),
	}

	suite.mockQueue.On("Pending", ctx).Return(ops, nil).Once()

	var replayedSales []string
	suite.mockFolioSvc.On("CreateBarSale", ctx, mock.AnythingOfType("dto.CreateBarSaleRequest"), mock.AnythingOfType("domain.Actor")).
		Run(func(args mock.Arguments) {
			replayedSales = append(replayedSales, args.Get(1).(dto.CreateBarSaleRequest).SaleID)
		}).
		Return(&portssvc.BarSaleResult{Created: true}, nil).
		Twice()
	suite.mockQueue.On("Ack", ctx, "corr-1").Return(nil).Once()
	suite.mockQueue.On("Ack", ctx, "corr-2").Return(nil).Once()

	result, err := suite.service.Replay(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, result.Synced)
	suite.Equal(0, result.Remaining)
	suite.False(result.Halted)
	suite.Equal([]string{"SALE-1", "SALE-2"}, replayedSales)

	suite.mockQueue.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestReplay_HaltsAtFirstFailure() {
	ctx := context.Background()
	ops := []dto.QueuedOperation{
		queuedBarSaleOp("corr-1", "SALE-1"),
		queuedBarSaleOp("corr-2", "SALE-2"),
		queuedBarSaleOp("corr-3", "SALE-3"),
	}

	suite.mockQueue.On("Pending", ctx).Return(ops, nil).Once()
	suite.mockFolioSvc.On("CreateBarSale", ctx, mock.MatchedBy(func(req dto.CreateBarSaleRequest) bool {
		return req.SaleID == "SALE-1"
	}), mock.AnythingOfType("domain.Actor")).Return(&portssvc.BarSaleResult{Created: true}, nil).Once()
	suite.mockQueue.On("Ack", ctx, "corr-1").Return(nil).Once()
	suite.mockFolioSvc.On("CreateBarSale", ctx, mock.MatchedBy(func(req dto.CreateBarSaleRequest) bool {
		return req.SaleID == "SALE-2"
	}), mock.AnythingOfType("domain.Actor")).Return(nil, errStoreDown).Once()

	result, err := suite.service.Replay(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Synced)
	suite.Equal(2, result.Remaining)
	suite.True(result.Halted)

	// Nothing past the failed operation is attempted or acknowledged.
	suite.mockQueue.AssertNotCalled(suite.T(), "Ack", ctx, "corr-2")
	suite.mockFolioSvc.AssertNumberOfCalls(suite.T(), "CreateBarSale", 2)
}

func (suite *SyncServiceTestSuite) TestReplay_ConcurrentPassIsNoOp() {
	ctx := context.Background()
	ops := []dto.QueuedOperation{queuedBarSaleOp("corr-1", "SALE-1")}

	suite.mockQueue.On("Pending", ctx).Return(ops, nil).Once()

	entered := make(chan struct{})
	release := make(chan struct{})
	suite.mockFolioSvc.On("CreateBarSale", ctx, mock.AnythingOfType("dto.CreateBarSaleRequest"), mock.AnythingOfType("domain.Actor")).
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&portssvc.BarSaleResult{Created: true}, nil).
		Once()
	suite.mockQueue.On("Ack", ctx, "corr-1").Return(nil).Once()

	firstDone := make(chan *dto.ReplayResultResponse, 1)
	go func() {
		result, err := suite.service.Replay(ctx)
		suite.NoError(err)
		firstDone <- result
	}()

	// Wait until the first pass is mid-operation, then start a second one.
	<-entered
	second, err := suite.service.Replay(ctx)
	suite.Require().NoError(err)
	suite.True(second.InProgress)
	suite.Zero(second.Synced)

	close(release)
	first := <-firstDone
	suite.False(first.InProgress)
	suite.Equal(1, first.Synced)

	// The queued sale reached the store exactly once.
	suite.mockFolioSvc.AssertNumberOfCalls(suite.T(), "CreateBarSale", 1)
	suite.mockQueue.AssertNumberOfCalls(suite.T(), "Ack", 1)
}

func (suite *SyncServiceTestSuite) TestReplay_StampsCorrelationIDOnCharge() {
	ctx := context.Background()
	ops := []dto.QueuedOperation{
		{
			CorrelationID: "corr-5",
			Kind:          dto.OpCharge,
			EnqueuedAt:    time.Now(),
			Actor:         dto.QueuedActor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff},
			FolioID:       "FOLIO-1",
			Charge:        &dto.AddLineItemRequest{Description: "Club Beer", ItemType: domain.ItemDrink, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(15)},
		},
		{
			CorrelationID: "corr-6",
			Kind:          dto.OpPayment,
			EnqueuedAt:    time.Now(),
			Actor:         dto.QueuedActor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff},
			FolioID:       "FOLIO-1",
			Payment:       &dto.AddPaymentRequest{Amount: decimal.NewFromInt(15), Method: domain.MethodCash},
		},
	}

	suite.mockQueue.On("Pending", ctx).Return(ops, nil).Once()
	suite.mockFolioSvc.On("AddLineItem", ctx, "FOLIO-1", mock.MatchedBy(func(req dto.AddLineItemRequest) bool {
		return req.CorrelationID == "corr-5"
	}), mock.AnythingOfType("domain.Actor")).Return(&domain.FolioLineItem{}, &domain.Folio{}, nil).Once()
	suite.mockPaymentSvc.On("AddPaymentToFolio", ctx, "FOLIO-1", mock.MatchedBy(func(req dto.AddPaymentRequest) bool {
		return req.CorrelationID == "corr-6"
	}), mock.AnythingOfType("domain.Actor")).Return(&portsrepo.PaymentOutcome{NewStatus: domain.FolioClosed}, nil).Once()
	suite.mockQueue.On("Ack", ctx, "corr-5").Return(nil).Once()
	suite.mockQueue.On("Ack", ctx, "corr-6").Return(nil).Once()

	result, err := suite.service.Replay(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, result.Synced)
	suite.mockFolioSvc.AssertExpectations(suite.T())
	suite.mockPaymentSvc.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestReplay_EmptyQueue() {
	ctx := context.Background()
	suite.mockQueue.On("Pending", ctx).Return([]dto.QueuedOperation{}, nil).Once()

	result, err := suite.service.Replay(ctx)

	suite.Require().NoError(err)
	suite.Zero(result.Synced)
	suite.Zero(result.Remaining)
	suite.False(result.Halted)
}

func (suite *SyncServiceTestSuite) TestReplay_VoidOperation() {
	ctx := context.Background()
	ops := []dto.QueuedOperation{
		{
			CorrelationID: "corr-9",
			Kind:          dto.OpVoid,
			EnqueuedAt:    time.Now(),
			Actor:         dto.QueuedActor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff},
			FolioID:       "FOLIO-1",
			Void:          &dto.VoidFolioRequest{Reason: "wrong table"},
		},
	}

	suite.mockQueue.On("Pending", ctx).Return(ops, nil).Once()
	suite.mockFolioSvc.On("VoidFolio", ctx, "FOLIO-1", "wrong table", mock.MatchedBy(func(actor domain.Actor) bool {
		return actor.StaffID == "STAFF-1" && actor.Role == domain.RoleStaff
	})).Return(nil).Once()
	suite.mockQueue.On("Ack", ctx, "corr-9").Return(nil).Once()

	result, err := suite.service.Replay(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Synced)
	suite.mockFolioSvc.AssertExpectations(suite.T())
}

// --- Status ---

func (suite *SyncServiceTestSuite) TestStatus() {
	ctx := context.Background()
	enqueuedAt := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	ops := []dto.QueuedOperation{queuedBarSaleOp("corr-1", "SALE-1")}
	ops[0].EnqueuedAt = enqueuedAt

	suite.mockQueue.On("Pending", ctx).Return(ops, nil).Once()

	status, err := suite.service.Status(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, status.PendingOperations)
	suite.Require().NotNil(status.OldestEnqueuedAt)
	suite.Equal(enqueuedAt, *status.OldestEnqueuedAt)
}

func (suite *SyncServiceTestSuite) TestStatus_EmptyQueue() {
	ctx := context.Background()
	suite.mockQueue.On("Pending", ctx).Return([]dto.QueuedOperation{}, nil).Once()

	status, err := suite.service.Status(ctx)

	suite.Require().NoError(err)
	suite.Zero(status.PendingOperations)
	suite.Nil(status.OldestEnqueuedAt)
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
