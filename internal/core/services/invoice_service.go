package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

// invoiceService closes folios into invoices and serves the billing history
// views.
type invoiceService struct {
	folioRepo   portsrepo.FolioRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
	now         func() time.Time
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(folioRepo portsrepo.FolioRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		folioRepo:   folioRepo,
		invoiceRepo: invoiceRepo,
		auditSvc:    auditSvc,
		now:         time.Now,
	}
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CloseFolioAndCreateInvoice settles an OPEN folio at explicit checkout and
// emits its invoice. The folio snapshot, payment, sequence increment and
// invoice all commit in one store transaction.
func (s *invoiceService) CloseFolioAndCreateInvoice(ctx context.Context, folioID string, req dto.CloseFolioRequest, actor domain.Actor) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperrors.NewAppError(400, ErrInvalidPaymentMethod.Error(), apperrors.ErrValidation)
	}
	if req.AmountPaid.IsNegative() {
		return nil, apperrors.NewAppError(400, ErrNonPositiveAmount.Error(), apperrors.ErrValidation)
	}

	invoice, err := s.folioRepo.CloseFolioWithInvoice(ctx, folioID, req.PaymentMethod, req.AmountPaid, actor, req.V1CheckoutID, s.now())
	if err != nil {
		logger.Error("Failed to close folio", slog.String("folio_id", folioID), slog.String("error", err.Error()))
		return nil, err
	}

	if lockErr := s.folioRepo.LockLineItems(ctx, folioID); lockErr != nil {
		logger.Warn("Failed to lock line items after close", slog.String("folio_id", folioID), slog.String("error", lockErr.Error()))
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
			"invoiceId":     invoice.InvoiceID,
			"paymentStatus": string(invoice.PaymentStatus),
		},
	})
	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:     domain.AuditInvoiceCreate,
		EntityType: domain.EntityInvoice,
		EntityID:   invoice.InvoiceID,
		UserID:     actor.StaffID,
		UserName:   actor.DisplayName,
		UserRole:   string(actor.Role),
		NewState: map[string]any{
			"invoiceNumber": invoice.InvoiceNumber,
			"folioId":       folioID,
			"grandTotal":    invoice.GrandTotal.String(),
		},
	})

	return invoice, nil
}

// RecordEmailed stamps the address an invoice copy was delivered to.
func (s *invoiceService) RecordEmailed(ctx context.Context, invoiceID string, emailedTo string, actor domain.Actor) error {
	if err := s.invoiceRepo.RecordEmailed(ctx, invoiceID, emailedTo); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Invoice emailed",
		slog.String("invoice_id", invoiceID),
		slog.String("emailed_to", emailedTo),
		slog.String("staff_id", actor.StaffID),
	)
	return nil
}

// GetInvoice retrieves one invoice with its line item snapshot.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// ListInvoices returns a searchable, paginated billing history.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, params.Search, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceResponses(invoices),
		NextToken: nextToken,
	}, nil
}

// RecordPrint bumps the invoice's print counter. Metadata only; the
// financial fields stay frozen.
func (s *invoiceService) RecordPrint(ctx context.Context, invoiceID string, actor domain.Actor) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.RecordPrint(ctx, invoiceID, s.now())
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		Action:     domain.AuditInvoicePrint,
		EntityType: domain.EntityInvoice,
		EntityID:   invoiceID,
		UserID:     actor.StaffID,
		UserName:   actor.DisplayName,
		UserRole:   string(actor.Role),
		NewState: map[string]any{
			"printCount": invoice.PrintCount,
		},
	})

	return invoice, nil
}
