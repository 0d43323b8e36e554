package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

var ErrNonPositiveAmount = errors.New("payment amount must be positive")

// paymentService records payments and drives the payment-side status
// transitions.
type paymentService struct {
	folioRepo portsrepo.FolioRepositoryFacade
	auditSvc  portssvc.AuditSvcFacade
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(folioRepo portsrepo.FolioRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		folioRepo: folioRepo,
		auditSvc:  auditSvc,
		now:       time.Now,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// AddPaymentToFolio records a payment against an open folio. A payment that
// settles the balance closes the folio and emits its invoice in the same
// store transaction; the outcome reports which transition happened.
func (s *paymentService) AddPaymentToFolio(ctx context.Context, folioID string, req dto.AddPaymentRequest, actor domain.Actor) (*portsrepo.PaymentOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, ErrNonPositiveAmount.Error(), apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(req.Method) {
		return nil, apperrors.NewAppError(400, ErrInvalidPaymentMethod.Error(), apperrors.ErrValidation)
	}

	// Offline replay pins the payment ID to the operation's correlation ID,
	// so a retried operation targets the same row instead of minting a new
	// one.
	paymentID := "PAY-" + uuid.NewString()
	if req.CorrelationID != "" {
		paymentID = "PAY-" + req.CorrelationID
	}

	payment := domain.Payment{
		PaymentID:     paymentID,
		FolioID:       folioID,
		Amount:        req.Amount,
		Method:        req.Method,
		Reference:     req.Reference,
		CreatedAt:     s.now(),
		CreatedBy:     actor.StaffID,
		CreatedByName: actor.DisplayName,
	}

	outcome, err := s.folioRepo.AddPayment(ctx, folioID, payment, actor)
	if err != nil {
		logger.Error("Failed to record payment", slog.String("folio_id", folioID), slog.String("error", err.Error()))
		return nil, err
	}
	if outcome.AlreadyRecorded {
		// An earlier replay attempt already landed this payment; nothing was
		// written and the first application was already audited.
		return outcome, nil
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:     domain.AuditPaymentReceive,
		EntityType: domain.EntityFolio,
		EntityID:   folioID,
		UserID:     actor.StaffID,
		UserName:   actor.DisplayName,
		UserRole:   string(actor.Role),
		NewState: map[string]any{
			"paymentId":     payment.PaymentID,
			"amount":        payment.Amount.String(),
			"method":        string(payment.Method),
			"newStatus":     string(outcome.NewStatus),
			"paymentStatus": string(outcome.PaymentStatus),
			"balance":       outcome.Balance.String(),
		},
	})

	if outcome.NewStatus == domain.FolioClosed {
		if lockErr := s.folioRepo.LockLineItems(ctx, folioID); lockErr != nil {
			logger.Warn("Failed to lock line items after auto-close", slog.String("folio_id", folioID), slog.String("error", lockErr.Error()))
		}
		s.auditSvc.Record(ctx, domain.AuditLog{
			Action:     domain.AuditFolioClose,
			EntityType: domain.EntityFolio,
			EntityID:   folioID,
			UserID:     actor.StaffID,
			UserName:   actor.DisplayName,
			UserRole:   string(actor.Role),
			NewState: map[string]any{
				"status":        string(domain.FolioClosed),
				"paymentStatus": string(outcome.PaymentStatus),
			},
		})
		if outcome.Invoice != nil {
			s.auditSvc.Record(ctx, domain.AuditLog{
				Action:     domain.AuditInvoiceCreate,
				EntityType: domain.EntityInvoice,
				EntityID:   outcome.Invoice.InvoiceID,
				UserID:     actor.StaffID,
				UserName:   actor.DisplayName,
				UserRole:   string(actor.Role),
				NewState: map[string]any{
					"invoiceNumber": outcome.Invoice.InvoiceNumber,
					"folioId":       folioID,
					"grandTotal":    outcome.Invoice.GrandTotal.String(),
				},
			})
		}
	}

	return outcome, nil
}
