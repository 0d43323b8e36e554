package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
	"github.com/sunrisehms/folio_ledger_app/internal/utils/mapping"
	"github.com/sunrisehms/folio_ledger_app/internal/utils/pagination"
)

func newInvoiceID() string {
	return "INV-" + uuid.NewString()
}

func newPaymentID() string {
	return "PAY-" + uuid.NewString()
}

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates the repository backing invoice lookups
// and print/delivery tracking.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `
	invoice_id, invoice_number,
	folio_id, folio_number, folio_type,
	issued_at, due_date,
	customer_name, customer_contact, customer_address,
	room_number, check_in_date, check_out_date,
	line_items, subtotal, discount_total, tax_total, grand_total,
	amount_paid, amount_due, payment_status, payment_method,
	issued_by, issued_by_name, service_center,
	v1_checkout_id, v1_sales_ids,
	print_count, last_printed_at, emailed_to`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	var lineItemsJSON []byte
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber,
		&m.FolioID, &m.FolioNumber, &m.FolioType,
		&m.IssuedAt, &m.DueDate,
		&m.CustomerName, &m.CustomerContact, &m.CustomerAddress,
		&m.RoomNumber, &m.CheckInDate, &m.CheckOutDate,
		&lineItemsJSON, &m.Subtotal, &m.DiscountTotal, &m.TaxTotal, &m.GrandTotal,
		&m.AmountPaid, &m.AmountDue, &m.PaymentStatus, &m.PaymentMethod,
		&m.IssuedBy, &m.IssuedByName, &m.ServiceCenter,
		&m.V1CheckoutID, &m.V1SalesIDs,
		&m.PrintCount, &m.LastPrintedAt, &m.EmailedTo,
	)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(lineItemsJSON, &m.LineItems); err != nil {
		return m, err
	}
	return m, nil
}

func insertInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	lineItemsJSON, err := json.Marshal(m.LineItems)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode invoice line items for "+m.InvoiceID, err)
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30)`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber,
		m.FolioID, m.FolioNumber, m.FolioType,
		m.IssuedAt, m.DueDate,
		m.CustomerName, m.CustomerContact, m.CustomerAddress,
		m.RoomNumber, m.CheckInDate, m.CheckOutDate,
		lineItemsJSON, m.Subtotal, m.DiscountTotal, m.TaxTotal, m.GrandTotal,
		m.AmountPaid, m.AmountDue, m.PaymentStatus, m.PaymentMethod,
		m.IssuedBy, m.IssuedByName, m.ServiceCenter,
		m.V1CheckoutID, m.V1SalesIDs,
		m.PrintCount, m.LastPrintedAt, m.EmailedTo,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}
	return nil
}

func findInvoiceIn(ctx context.Context, q pgxQuerier, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(q.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

// FindInvoiceByID retrieves an invoice with its line item snapshot.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return findInvoiceIn(ctx, r.Pool, invoiceID)
}

// ListInvoices retrieves a token-paginated invoice list ordered
// newest-first, optionally filtered by a case-insensitive search on the
// invoice number and customer name.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, search *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []any{}

	if search != nil && *search != "" {
		args = append(args, "%"+*search+"%")
		pos := strconv.Itoa(len(args))
		query += ` AND (invoice_number ILIKE $` + pos + ` OR customer_name ILIKE $` + pos + `)`
	}
	if nextToken != nil && *nextToken != "" {
		lastIssuedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastIssuedAt, lastID)
		query += ` AND (issued_at, invoice_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY issued_at DESC, invoice_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	modelInvoices := make([]models.Invoice, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row", scanErr)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}

	var nextTokenVal *string
	results := modelInvoices
	if len(modelInvoices) > limit {
		last := modelInvoices[limit-1]
		token := pagination.EncodeCursor(last.IssuedAt, last.InvoiceID)
		nextTokenVal = &token
		results = modelInvoices[:limit]
	}

	return mapping.ToDomainInvoiceSlice(results), nextTokenVal, nil
}

// RecordPrint increments the print counter and stamps the print time. These
// are the only financial-adjacent columns an invoice allows updates to.
func (r *PgxInvoiceRepository) RecordPrint(ctx context.Context, invoiceID string, printedAt time.Time) (*domain.Invoice, error) {
	query := `
		UPDATE invoices
		SET print_count = print_count + 1, last_printed_at = $2
		WHERE invoice_id = $1
		RETURNING ` + invoiceColumns + `;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID, printedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to record print for invoice "+invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

// RecordEmailed stamps the address an invoice copy was delivered to.
func (r *PgxInvoiceRepository) RecordEmailed(ctx context.Context, invoiceID string, emailedTo string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE invoices SET emailed_to = $2 WHERE invoice_id = $1;`, invoiceID, emailedTo)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record email delivery for invoice "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
