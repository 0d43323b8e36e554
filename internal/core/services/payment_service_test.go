package services_test

import (
	"context"
	"testing"

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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockFolioRepository
	mockAudit *MockAuditService
	service   portssvc.PaymentSvcFacade
	actor     domain.Actor
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFolioRepository)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewPaymentService(suite.mockRepo, suite.mockAudit)
	suite.actor = domain.Actor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff}
}

func (suite *PaymentServiceTestSuite) TestAddPayment_PartialPayment() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(40), Method: domain.MethodCash}

	outcome := &portsrepo.PaymentOutcome{
		NewStatus:     domain.FolioPartPaid,
		PaymentStatus: domain.PaymentPartial,
		Balance:       decimal.NewFromInt(60),
	}
	var capturedPayment domain.Payment
	suite.mockRepo.On("AddPayment", ctx, "FOLIO-1", mock.AnythingOfType("domain.Payment"), suite.actor).
		Run(func(args mock.Arguments) { capturedPayment = args.Get(2).(domain.Payment) }).
		Return(outcome, nil).
		Once()
	suite.mockAudit.On("Record", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == domain.AuditPaymentReceive
	})).Once()

	got, err := suite.service.AddPaymentToFolio(ctx, "FOLIO-1", req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(outcome, got)
	suite.NotEmpty(capturedPayment.PaymentID)
	suite.True(decimal.NewFromInt(40).Equal(capturedPayment.Amount))
	suite.Equal(suite.actor.StaffID, capturedPayment.CreatedBy)

	// A partial payment never locks line items.
	suite.mockRepo.AssertNotCalled(suite.T(), "LockLineItems", mock.Anything, mock.Anything)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_AutoClose() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(100), Method: domain.MethodMomo}

	outcome := &portsrepo.PaymentOutcome{
		NewStatus:     domain.FolioClosed,
		PaymentStatus: domain.PaymentPaid,
		Balance:       decimal.Zero,
		Invoice:       &domain.Invoice{InvoiceID: "INV-1", InvoiceNumber: "INV-2026-00005", GrandTotal: decimal.NewFromInt(100)},
	}
	suite.mockRepo.On("AddPayment", ctx, "FOLIO-1", mock.AnythingOfType("domain.Payment"), suite.actor).Return(outcome, nil).Once()
	suite.mockRepo.On("LockLineItems", ctx, "FOLIO-1").Return(nil).Once()

	actions := make([]domain.AuditAction, 0, 3)
	suite.mockAudit.On("Record", ctx, mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) { actions = append(actions, args.Get(1).(domain.AuditLog).Action) }).
		Times(3)

	got, err := suite.service.AddPaymentToFolio(ctx, "FOLIO-1", req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.FolioClosed, got.NewStatus)
	suite.Require().NotNil(got.Invoice)
	suite.Equal([]domain.AuditAction{
		domain.AuditPaymentReceive,
		domain.AuditFolioClose,
		domain.AuditInvoiceCreate,
	}, actions)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_NonPositiveAmount() {
	req := dto.AddPaymentRequest{Amount: decimal.Zero, Method: domain.MethodCash}

	got, err := suite.service.AddPaymentToFolio(context.Background(), "FOLIO-1", req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_InvalidMethod() {
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(10), Method: "CHEQUE"}

	_, err := suite.service.AddPaymentToFolio(context.Background(), "FOLIO-1", req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_SettledFolioConflict() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(10), Method: domain.MethodCash}

	suite.mockRepo.On("AddPayment", ctx, "FOLIO-closed", mock.AnythingOfType("domain.Payment"), suite.actor).
		Return(nil, apperrors.NewAppError(409, "folio is closed", apperrors.ErrConflict)).
		Once()

	_, err := suite.service.AddPaymentToFolio(ctx, "FOLIO-closed", req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_ReplayPinsPaymentID() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(40), Method: domain.MethodCash, CorrelationID: "corr-12"}

	outcome := &portsrepo.PaymentOutcome{
		NewStatus:     domain.FolioPartPaid,
		PaymentStatus: domain.PaymentPartial,
		Balance:       decimal.NewFromInt(60),
	}
	var capturedPayment domain.Payment
	suite.mockRepo.On("AddPayment", ctx, "FOLIO-1", mock.AnythingOfType("domain.Payment"), suite.actor).
		Run(func(args mock.Arguments) { capturedPayment = args.Get(2).(domain.Payment) }).
		Return(outcome, nil).
		Once()
	suite.mockAudit.On("Record", ctx, mock.AnythingOfType("domain.AuditLog")).Once()

	_, err := suite.service.AddPaymentToFolio(ctx, "FOLIO-1", req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal("PAY-corr-12", capturedPayment.PaymentID)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_AlreadyRecordedSkipsAudit() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(100), Method: domain.MethodMomo, CorrelationID: "corr-12"}

	// The first application of this payment closed the folio; the retry
	// reports that state without writing or auditing anything again.
	outcome := &portsrepo.PaymentOutcome{
		NewStatus:       domain.FolioClosed,
		PaymentStatus:   domain.PaymentPaid,
		Balance:         decimal.Zero,
		AlreadyRecorded: true,
	}
	suite.mockRepo.On("AddPayment", ctx, "FOLIO-1", mock.AnythingOfType("domain.Payment"), suite.actor).Return(outcome, nil).Once()

	got, err := suite.service.AddPaymentToFolio(ctx, "FOLIO-1", req, suite.actor)

	suite.Require().NoError(err)
	suite.True(got.AlreadyRecorded)
	suite.Equal(domain.FolioClosed, got.NewStatus)
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "LockLineItems", mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
