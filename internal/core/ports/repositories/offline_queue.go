package repositories

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// OfflineQueue is the local, durable, ordered buffer of ledger mutations
// that could not reach the backing store. Replay order is strictly the
// enqueue order; an operation is removed only after the store confirms its
// write.
type OfflineQueue interface {
	// Enqueue durably appends an operation to the tail of the queue.
	Enqueue(ctx context.Context, op dto.QueuedOperation) error

	// Pending returns all queued operations in enqueue order.
	Pending(ctx context.Context) ([]dto.QueuedOperation, error)

	// Ack removes the head operation after its store write was confirmed.
	// Returns ErrConflict if correlationID does not match the current head:
	// the queue never acknowledges out of order.
	Ack(ctx context.Context, correlationID string) error

	// Depth reports how many operations are waiting.
	Depth(ctx context.Context) (int, error)
}
