package repositories

import (
	"context"
	"time"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// InvoiceReader defines read operations for the billing history views.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its denormalized line items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a token-paginated invoice list, optionally
	// filtered by a search term matched against invoice number and customer
	// name.
	ListInvoices(ctx context.Context, search *string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines the only mutations an invoice permits after
// creation: delivery metadata. Financial fields are frozen.
type InvoiceWriter interface {
	// RecordPrint increments the print counter and stamps the print time.
	RecordPrint(ctx context.Context, invoiceID string, printedAt time.Time) (*domain.Invoice, error)

	// RecordEmailed stamps the address an invoice copy was delivered to.
	RecordEmailed(ctx context.Context, invoiceID string, emailedTo string) error
}

// InvoiceRepositoryFacade combines the invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
