package services

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// InvoiceSvcFacade closes folios into invoices and serves the billing
// history views.
type InvoiceSvcFacade interface {
	// CloseFolioAndCreateInvoice settles an OPEN folio at explicit checkout
	// and emits its invoice.
	CloseFolioAndCreateInvoice(ctx context.Context, folioID string, req dto.CloseFolioRequest, actor domain.Actor) (*domain.Invoice, error)

	// GetInvoice retrieves one invoice with its line item snapshot.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns a searchable, paginated billing history.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// RecordPrint bumps the invoice's print counter. Metadata only; the
	// financial fields stay frozen.
	RecordPrint(ctx context.Context, invoiceID string, actor domain.Actor) (*domain.Invoice, error)

	// RecordEmailed stamps the address an invoice copy was delivered to.
	// Delivery itself is owned by the surrounding application.
	RecordEmailed(ctx context.Context, invoiceID string, emailedTo string, actor domain.Actor) error
}
