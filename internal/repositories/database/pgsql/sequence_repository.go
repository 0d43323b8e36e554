package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// nextSequenceNumberInTx consumes the next number of the per-year, per-kind
// sequence. It must only be called inside the transaction that persists the
// record consuming the number: the increment commits or rolls back together
// with that record, so retried failures never burn a number and concurrent
// callers never observe the same one (the upsert serializes on the row).
func nextSequenceNumberInTx(ctx context.Context, tx pgx.Tx, kind domain.CounterKind, year int) (int64, error) {
	query := `
		INSERT INTO sequence_counters (kind, year, last_number, prefix)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (kind, year)
		DO UPDATE SET last_number = sequence_counters.last_number + 1
		RETURNING last_number;
	`
	prefix := fmt.Sprintf("%s-%d-", kind.Prefix(), year)

	var lastNumber int64
	if err := tx.QueryRow(ctx, query, string(kind), year, prefix).Scan(&lastNumber); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance "+string(kind)+" sequence", err)
	}
	return lastNumber, nil
}
