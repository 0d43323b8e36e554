package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
	"github.com/sunrisehms/folio_ledger_app/internal/utils/mapping"
	"github.com/sunrisehms/folio_ledger_app/internal/utils/pagination"
)

// pgxQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so the scan
// helpers work inside and outside transactions.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgxFolioRepository struct {
	BaseRepository
}

// newPgxFolioRepository creates the repository backing the folio store,
// payment recorder and invoice generator transactions.
func newPgxFolioRepository(pool *pgxpool.Pool) portsrepo.FolioRepositoryFacade {
	return &PgxFolioRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFolioRepository implements portsrepo.FolioRepositoryFacade
var _ portsrepo.FolioRepositoryFacade = (*PgxFolioRepository)(nil)

const folioColumns = `
	folio_id, folio_number, folio_type, status,
	created_at, closed_at, voided_at,
	owner_name, owner_contact,
	room_id, room_number, check_in_date, check_out_date, nights_booked, adults, children,
	subtotal, discount_total, tax_total, grand_total,
	amount_paid, payment_status,
	created_by, created_by_name, closed_by, closed_by_name,
	v1_sales_ids, v1_checkout_id, v1_room_id,
	invoice_id, invoice_number,
	service_center, notes`

func scanFolio(row pgx.Row) (models.Folio, error) {
	var m models.Folio
	err := row.Scan(
		&m.FolioID, &m.FolioNumber, &m.FolioType, &m.Status,
		&m.CreatedAt, &m.ClosedAt, &m.VoidedAt,
		&m.OwnerName, &m.OwnerContact,
		&m.RoomID, &m.RoomNumber, &m.CheckInDate, &m.CheckOutDate, &m.NightsBooked, &m.Adults, &m.Children,
		&m.Subtotal, &m.DiscountTotal, &m.TaxTotal, &m.GrandTotal,
		&m.AmountPaid, &m.PaymentStatus,
		&m.CreatedBy, &m.CreatedByName, &m.ClosedBy, &m.ClosedByName,
		&m.V1SalesIDs, &m.V1CheckoutID, &m.V1RoomID,
		&m.InvoiceID, &m.InvoiceNumber,
		&m.ServiceCenter, &m.Notes,
	)
	return m, err
}

func findFolioIn(ctx context.Context, q pgxQuerier, folioID string, forUpdate bool) (*domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM folios WHERE folio_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanFolio(q.QueryRow(ctx, query, folioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find folio "+folioID, err)
	}
	f := mapping.ToDomainFolio(m)
	return &f, nil
}

func insertFolioInTx(ctx context.Context, tx pgx.Tx, m models.Folio, onConflictDoNothing bool) (bool, error) {
	query := `
		INSERT INTO folios (` + folioColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33)`
	if onConflictDoNothing {
		query += ` ON CONFLICT (folio_id) DO NOTHING`
	}
	tag, err := tx.Exec(ctx, query,
		m.FolioID, m.FolioNumber, m.FolioType, m.Status,
		m.CreatedAt, m.ClosedAt, m.VoidedAt,
		m.OwnerName, m.OwnerContact,
		m.RoomID, m.RoomNumber, m.CheckInDate, m.CheckOutDate, m.NightsBooked, m.Adults, m.Children,
		m.Subtotal, m.DiscountTotal, m.TaxTotal, m.GrandTotal,
		m.AmountPaid, m.PaymentStatus,
		m.CreatedBy, m.CreatedByName, m.ClosedBy, m.ClosedByName,
		m.V1SalesIDs, m.V1CheckoutID, m.V1RoomID,
		m.InvoiceID, m.InvoiceNumber,
		m.ServiceCenter, m.Notes,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, apperrors.NewAppError(409, "folio "+m.FolioID+" conflicts with an existing folio", apperrors.ErrConflict)
		}
		return false, apperrors.NewAppError(500, "failed to insert folio "+m.FolioID, err)
	}
	return tag.RowsAffected() > 0, nil
}

const lineItemColumns = `
	item_id, folio_id, created_at, description, item_type,
	quantity, unit_price, subtotal,
	discount_amount, discount_reason, tax_amount, tax_rate, total_amount,
	staff_id, staff_name, category,
	v1_sales_id, v1_menu_item_id,
	source_module, is_offline_created, synced_at, is_locked`

func insertLineItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.FolioLineItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `
		INSERT INTO folio_line_items (` + lineItemColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`
	batch := &pgx.Batch{}
	for _, li := range items {
		m := mapping.ToModelLineItem(li)
		batch.Queue(query,
			m.ItemID, m.FolioID, m.CreatedAt, m.Description, m.ItemType,
			m.Quantity, m.UnitPrice, m.Subtotal,
			m.DiscountAmount, m.DiscountReason, m.TaxAmount, m.TaxRate, m.TotalAmount,
			m.StaffID, m.StaffName, m.Category,
			m.V1SalesID, m.V1MenuItemID,
			m.SourceModule, m.IsOfflineCreated, m.SyncedAt, m.IsLocked,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items", err)
	}
	return nil
}

func findLineItemsIn(ctx context.Context, q pgxQuerier, folioID string) ([]domain.FolioLineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM folio_line_items
		WHERE folio_id = $1
		ORDER BY created_at, item_id;
	`
	rows, err := q.Query(ctx, query, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for folio "+folioID, err)
	}
	defer rows.Close()

	items := []models.FolioLineItem{}
	for rows.Next() {
		var m models.FolioLineItem
		if err := rows.Scan(
			&m.ItemID, &m.FolioID, &m.CreatedAt, &m.Description, &m.ItemType,
			&m.Quantity, &m.UnitPrice, &m.Subtotal,
			&m.DiscountAmount, &m.DiscountReason, &m.TaxAmount, &m.TaxRate, &m.TotalAmount,
			&m.StaffID, &m.StaffName, &m.Category,
			&m.V1SalesID, &m.V1MenuItemID,
			&m.SourceModule, &m.IsOfflineCreated, &m.SyncedAt, &m.IsLocked,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for folio "+folioID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for folio "+folioID, err)
	}
	return mapping.ToDomainLineItemSlice(items), nil
}

func lineItemExistsIn(ctx context.Context, q pgxQuerier, itemID string) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM folio_line_items WHERE item_id = $1);`, itemID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check line item "+itemID, err)
	}
	return exists, nil
}

func paymentExistsIn(ctx context.Context, q pgxQuerier, paymentID string) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM folio_payments WHERE payment_id = $1);`, paymentID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check payment "+paymentID, err)
	}
	return exists, nil
}

func insertPaymentInTx(ctx context.Context, tx pgx.Tx, p domain.Payment) error {
	m := mapping.ToModelPayment(p)
	query := `
		INSERT INTO folio_payments (payment_id, folio_id, amount, method, reference, created_at, created_by, created_by_name)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID, m.FolioID, m.Amount, m.Method, m.Reference, m.CreatedAt, m.CreatedBy, m.CreatedByName,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

// CreateFolio persists a new OPEN folio with its initial line items. The
// folio number is consumed from the yearly FOLIO sequence inside the same
// transaction that writes the folio row.
func (r *PgxFolioRepository) CreateFolio(ctx context.Context, folio domain.Folio, items []domain.FolioLineItem) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	year := folio.CreatedAt.Year()
	seq, err := nextSequenceNumberInTx(ctx, tx, domain.CounterFolio, year)
	if err != nil {
		return nil, err
	}
	folio.FolioNumber = domain.FormatSequenceNumber(domain.CounterFolio, year, seq)

	if _, err := insertFolioInTx(ctx, tx, mapping.ToModelFolio(folio), false); err != nil {
		return nil, err
	}
	if err := insertLineItemsInTx(ctx, tx, items); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &folio, nil
}

// CreateSettledFolio persists an instantly-settled BAR folio with its line
// items, payment and invoice in one transaction. The folio ID is derived
// from the originating sale ID; a replayed sale finds the existing row and
// returns it instead of writing twice.
func (r *PgxFolioRepository) CreateSettledFolio(ctx context.Context, folio domain.Folio, items []domain.FolioLineItem, payment domain.Payment) (*domain.Folio, *domain.Invoice, bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, false, err
	}
	defer r.Rollback(ctx, tx)

	year := folio.CreatedAt.Year()
	seq, err := nextSequenceNumberInTx(ctx, tx, domain.CounterFolio, year)
	if err != nil {
		return nil, nil, false, err
	}
	folio.FolioNumber = domain.FormatSequenceNumber(domain.CounterFolio, year, seq)

	inserted, err := insertFolioInTx(ctx, tx, mapping.ToModelFolio(folio), true)
	if err != nil {
		return nil, nil, false, err
	}
	if !inserted {
		// Replay of an already-processed sale. Abandon the transaction (the
		// consumed sequence number rolls back with it) and return the
		// existing records.
		_ = r.Rollback(ctx, tx)
		existing, err := r.FindFolioByID(ctx, folio.FolioID)
		if err != nil {
			return nil, nil, false, err
		}
		var invoice *domain.Invoice
		if existing.InvoiceID != nil {
			invoice, err = findInvoiceIn(ctx, r.Pool, *existing.InvoiceID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, false, err
			}
		}
		return existing, invoice, false, nil
	}

	if err := insertLineItemsInTx(ctx, tx, items); err != nil {
		return nil, nil, false, err
	}
	if err := insertPaymentInTx(ctx, tx, payment); err != nil {
		return nil, nil, false, err
	}

	invSeq, err := nextSequenceNumberInTx(ctx, tx, domain.CounterInvoice, year)
	if err != nil {
		return nil, nil, false, err
	}
	invoiceNumber := domain.FormatSequenceNumber(domain.CounterInvoice, year, invSeq)
	actor := domain.Actor{StaffID: folio.CreatedBy, DisplayName: folio.CreatedByName}
	invoice := domain.NewInvoiceFromFolio(newInvoiceID(), invoiceNumber, folio, items, payment.Method, payment.Amount, actor, folio.CreatedAt, nil)

	if err := insertInvoiceInTx(ctx, tx, invoice); err != nil {
		return nil, nil, false, err
	}

	updateQuery := `UPDATE folios SET invoice_id = $2, invoice_number = $3 WHERE folio_id = $1;`
	if _, err := tx.Exec(ctx, updateQuery, folio.FolioID, invoice.InvoiceID, invoice.InvoiceNumber); err != nil {
		return nil, nil, false, apperrors.NewAppError(500, "failed to stamp invoice onto folio "+folio.FolioID, err)
	}
	folio.InvoiceID = &invoice.InvoiceID
	folio.InvoiceNumber = &invoice.InvoiceNumber

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, false, err
	}
	return &folio, &invoice, true, nil
}

// AddLineItem appends a charge to an OPEN or PART_PAID folio. The folio row
// is locked for the duration of the transaction and the aggregates are
// incremented in SQL, never computed client-side, so concurrent appends
// from different terminals cannot lose updates. An item whose ID is already
// present was landed by an earlier attempt; nothing is written and the
// folio is returned as it stands, with inserted=false. The duplicate check
// runs before the status check so a retried charge on a folio that has
// since settled still resolves instead of erroring forever.
func (r *PgxFolioRepository) AddLineItem(ctx context.Context, folioID string, item domain.FolioLineItem) (*domain.Folio, bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := findFolioIn(ctx, tx, folioID, true)
	if err != nil {
		return nil, false, err
	}
	exists, err := lineItemExistsIn(ctx, tx, item.ItemID)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return folio, false, nil
	}
	if !folio.Status.IsMutable() {
		return nil, false, apperrors.NewAppError(409, "cannot add line item to "+string(folio.Status)+" folio "+folioID, apperrors.ErrConflict)
	}

	item.FolioID = folioID
	if err := insertLineItemsInTx(ctx, tx, []domain.FolioLineItem{item}); err != nil {
		return nil, false, err
	}

	updateQuery := `
		UPDATE folios
		SET subtotal = subtotal + $2,
		    discount_total = discount_total + $3,
		    tax_total = tax_total + $4,
		    grand_total = grand_total + $5,
		    v1_sales_ids = CASE WHEN $6::text IS NULL THEN v1_sales_ids ELSE array_append(v1_sales_ids, $6) END
		WHERE folio_id = $1
		RETURNING ` + folioColumns + `;`
	m, err := scanFolio(tx.QueryRow(ctx, updateQuery,
		folioID, item.Subtotal, item.DiscountAmount, item.TaxAmount, item.TotalAmount, item.V1SalesID,
	))
	if err != nil {
		return nil, false, apperrors.NewAppError(500, "failed to increment folio totals for "+folioID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}
	updated := mapping.ToDomainFolio(m)
	return &updated, true, nil
}

// AddPayment records a payment inside a single transaction: re-reads the
// folio under lock, rejects settled folios, recomputes the paid amount and
// derives the status transition. Reaching a zero balance auto-closes the
// folio and generates its invoice in the same transaction, so every CLOSED
// folio has an invoice no matter which path closed it.
func (r *PgxFolioRepository) AddPayment(ctx context.Context, folioID string, payment domain.Payment, actor domain.Actor) (*portsrepo.PaymentOutcome, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := findFolioIn(ctx, tx, folioID, true)
	if err != nil {
		return nil, err
	}
	// A payment ID already on file was landed by an earlier attempt. Report
	// the state that attempt produced and write nothing. Checked before the
	// status check so a retried payment that closed the folio still resolves
	// instead of erroring forever.
	exists, err := paymentExistsIn(ctx, tx, payment.PaymentID)
	if err != nil {
		return nil, err
	}
	if exists {
		balance := folio.GrandTotal.Sub(folio.AmountPaid)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		return &portsrepo.PaymentOutcome{
			Payment:         payment,
			NewStatus:       folio.Status,
			PaymentStatus:   folio.PaymentStatus,
			Balance:         balance,
			AlreadyRecorded: true,
		}, nil
	}
	if !folio.Status.IsMutable() {
		return nil, apperrors.NewAppError(409, "cannot pay a settled order (status "+string(folio.Status)+")", apperrors.ErrConflict)
	}

	payment.FolioID = folioID
	if err := insertPaymentInTx(ctx, tx, payment); err != nil {
		return nil, err
	}

	newAmountPaid := folio.AmountPaid.Add(payment.Amount)
	balance := folio.GrandTotal.Sub(newAmountPaid)
	paymentStatus := domain.PaymentStatusFor(newAmountPaid, folio.GrandTotal)

	outcome := &portsrepo.PaymentOutcome{
		Payment:       payment,
		PaymentStatus: paymentStatus,
		Balance:       balance,
	}
	if outcome.Balance.IsNegative() {
		outcome.Balance = decimal.Zero
	}

	if !balance.IsPositive() {
		// Fully paid: auto-close and emit the invoice in this transaction.
		items, err := findLineItemsIn(ctx, tx, folioID)
		if err != nil {
			return nil, err
		}
		year := payment.CreatedAt.Year()
		invSeq, err := nextSequenceNumberInTx(ctx, tx, domain.CounterInvoice, year)
		if err != nil {
			return nil, err
		}
		invoiceNumber := domain.FormatSequenceNumber(domain.CounterInvoice, year, invSeq)
		invoice := domain.NewInvoiceFromFolio(newInvoiceID(), invoiceNumber, *folio, items, payment.Method, newAmountPaid, actor, payment.CreatedAt, nil)
		if err := insertInvoiceInTx(ctx, tx, invoice); err != nil {
			return nil, err
		}

		closeQuery := `
			UPDATE folios
			SET status = $2, amount_paid = $3, payment_status = $4,
			    closed_at = $5, closed_by = $6, closed_by_name = $7,
			    invoice_id = $8, invoice_number = $9
			WHERE folio_id = $1;`
		if _, err := tx.Exec(ctx, closeQuery,
			folioID, string(domain.FolioClosed), newAmountPaid, string(paymentStatus),
			payment.CreatedAt, actor.StaffID, actor.DisplayName,
			invoice.InvoiceID, invoice.InvoiceNumber,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to close folio "+folioID+" after full payment", err)
		}
		outcome.NewStatus = domain.FolioClosed
		outcome.Invoice = &invoice
	} else {
		partQuery := `
			UPDATE folios
			SET status = $2, amount_paid = $3, payment_status = $4
			WHERE folio_id = $1;`
		if _, err := tx.Exec(ctx, partQuery,
			folioID, string(domain.FolioPartPaid), newAmountPaid, string(paymentStatus),
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to record partial payment on folio "+folioID, err)
		}
		outcome.NewStatus = domain.FolioPartPaid
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return outcome, nil
}

// CloseFolioWithInvoice settles an OPEN folio at explicit checkout. The
// line item snapshot, the invoice sequence increment, the invoice write and
// the folio close all commit together. Locking the line items is left to
// the caller as a follow-up write.
func (r *PgxFolioRepository) CloseFolioWithInvoice(ctx context.Context, folioID string, method domain.PaymentMethod, amountPaid decimal.Decimal, actor domain.Actor, v1CheckoutID *string, closedAt time.Time) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := findFolioIn(ctx, tx, folioID, true)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.NewAppError(409, "folio "+folioID+" is already "+string(folio.Status), apperrors.ErrConflict)
	}

	items, err := findLineItemsIn(ctx, tx, folioID)
	if err != nil {
		return nil, err
	}

	if amountPaid.IsPositive() {
		if err := insertPaymentInTx(ctx, tx, domain.Payment{
			PaymentID:     newPaymentID(),
			FolioID:       folioID,
			Amount:        amountPaid,
			Method:        method,
			CreatedAt:     closedAt,
			CreatedBy:     actor.StaffID,
			CreatedByName: actor.DisplayName,
		}); err != nil {
			return nil, err
		}
	}

	year := closedAt.Year()
	invSeq, err := nextSequenceNumberInTx(ctx, tx, domain.CounterInvoice, year)
	if err != nil {
		return nil, err
	}
	invoiceNumber := domain.FormatSequenceNumber(domain.CounterInvoice, year, invSeq)
	invoice := domain.NewInvoiceFromFolio(newInvoiceID(), invoiceNumber, *folio, items, method, amountPaid, actor, closedAt, v1CheckoutID)
	if err := insertInvoiceInTx(ctx, tx, invoice); err != nil {
		return nil, err
	}

	paymentStatus := domain.PaymentStatusFor(amountPaid, folio.GrandTotal)
	closeQuery := `
		UPDATE folios
		SET status = $2, closed_at = $3, check_out_date = $3,
		    amount_paid = $4, payment_status = $5,
		    closed_by = $6, closed_by_name = $7,
		    invoice_id = $8, invoice_number = $9,
		    v1_checkout_id = COALESCE($10, v1_checkout_id)
		WHERE folio_id = $1;`
	if _, err := tx.Exec(ctx, closeQuery,
		folioID, string(domain.FolioClosed), closedAt,
		amountPaid, string(paymentStatus),
		actor.StaffID, actor.DisplayName,
		invoice.InvoiceID, invoice.InvoiceNumber,
		v1CheckoutID,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close folio "+folioID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// VoidFolio transitions an OPEN folio to VOIDED. PART_PAID folios cannot be
// voided: money has already been taken against them.
func (r *PgxFolioRepository) VoidFolio(ctx context.Context, folioID string, reason string, actor domain.Actor, voidedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	folio, err := findFolioIn(ctx, tx, folioID, true)
	if err != nil {
		return err
	}
	if folio.Status != domain.FolioOpen {
		return apperrors.NewAppError(409, "cannot void "+string(folio.Status)+" folio "+folioID, apperrors.ErrConflict)
	}

	voidQuery := `
		UPDATE folios
		SET status = $2, voided_at = $3, closed_by = $4, closed_by_name = $5, notes = $6
		WHERE folio_id = $1;`
	if _, err := tx.Exec(ctx, voidQuery,
		folioID, string(domain.FolioVoided), voidedAt, actor.StaffID, actor.DisplayName, "VOIDED: "+reason,
	); err != nil {
		return apperrors.NewAppError(500, "failed to void folio "+folioID, err)
	}

	return r.Commit(ctx, tx)
}

// LockLineItems flips is_locked on every line item of a folio. Follow-up
// write after closure or void; not part of the closing transaction.
func (r *PgxFolioRepository) LockLineItems(ctx context.Context, folioID string) error {
	query := `UPDATE folio_line_items SET is_locked = TRUE WHERE folio_id = $1 AND is_locked = FALSE;`
	if _, err := r.Pool.Exec(ctx, query, folioID); err != nil {
		return apperrors.NewAppError(500, "failed to lock line items for folio "+folioID, err)
	}
	return nil
}

// FindFolioByID retrieves a folio by its ID.
func (r *PgxFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	return findFolioIn(ctx, r.Pool, folioID, false)
}

// FindActiveFolioForRoom returns the single OPEN ROOM folio for a room.
// At most one exists at any time; check-in refuses a room that has one.
func (r *PgxFolioRepository) FindActiveFolioForRoom(ctx context.Context, roomID string) (*domain.Folio, error) {
	query := `
		SELECT ` + folioColumns + `
		FROM folios
		WHERE room_id = $1 AND folio_type = 'ROOM' AND status = 'OPEN'
		ORDER BY created_at
		LIMIT 1;`
	m, err := scanFolio(r.Pool.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find active folio for room "+roomID, err)
	}
	f := mapping.ToDomainFolio(m)
	return &f, nil
}

// ListFolios retrieves a filtered, token-paginated folio list ordered
// newest-first.
func (r *PgxFolioRepository) ListFolios(ctx context.Context, filter portsrepo.FolioListFilter, limit int, nextToken *string) ([]domain.Folio, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + folioColumns + ` FROM folios WHERE 1=1`
	args := []any{}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.FolioType != nil {
		args = append(args, string(*filter.FolioType))
		query += ` AND folio_type = $` + strconv.Itoa(len(args))
	}
	if filter.ServiceCenter != nil {
		args = append(args, *filter.ServiceCenter)
		query += ` AND service_center = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, folio_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC, folio_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query folios", err)
	}
	defer rows.Close()

	modelFolios := make([]models.Folio, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanFolio(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan folio row", scanErr)
		}
		modelFolios = append(modelFolios, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating folio rows", err)
	}

	var nextTokenVal *string
	results := modelFolios
	if len(modelFolios) > limit {
		last := modelFolios[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.FolioID)
		nextTokenVal = &token
		results = modelFolios[:limit]
	}

	return mapping.ToDomainFolioSlice(results), nextTokenVal, nil
}

// FindLineItemsByFolioID retrieves all line items for a folio in creation order.
func (r *PgxFolioRepository) FindLineItemsByFolioID(ctx context.Context, folioID string) ([]domain.FolioLineItem, error) {
	return findLineItemsIn(ctx, r.Pool, folioID)
}

// FindPaymentsByFolioID retrieves all payments recorded against a folio.
func (r *PgxFolioRepository) FindPaymentsByFolioID(ctx context.Context, folioID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, folio_id, amount, method, reference, created_at, created_by, created_by_name
		FROM folio_payments
		WHERE folio_id = $1
		ORDER BY created_at, payment_id;`
	rows, err := r.Pool.Query(ctx, query, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for folio "+folioID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.FolioID, &m.Amount, &m.Method, &m.Reference, &m.CreatedAt, &m.CreatedBy, &m.CreatedByName); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row for folio "+folioID, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows for folio "+folioID, err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}
