package offline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/offline"
)

func queueOp(correlationID string) dto.QueuedOperation {
	return dto.QueuedOperation{
		CorrelationID: correlationID,
		Kind:          dto.OpPayment,
		EnqueuedAt:    time.Now().UTC().Truncate(time.Millisecond),
		Actor:         dto.QueuedActor{StaffID: "STAFF-1", DisplayName: "Ama Mensah", Role: domain.RoleStaff},
		FolioID:       "FOLIO-1",
		Payment:       &dto.AddPaymentRequest{Amount: decimal.NewFromInt(50), Method: domain.MethodCash},
	}
}

func newTestQueue(t *testing.T) (*offline.FileQueue, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queue.jsonl")
	q, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	t.Cleanup(func() { q.Close() })
	return q, path
}

func TestFileQueue_EnqueueOrder(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	require.NoError(t, q.Enqueue(ctx, queueOp("corr-1")))
	require.NoError(t, q.Enqueue(ctx, queueOp("corr-2")))
	require.NoError(t, q.Enqueue(ctx, queueOp("corr-3")))

	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	pending, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "corr-1", pending[0].CorrelationID)
	assert.Equal(t, "corr-2", pending[1].CorrelationID)
	assert.Equal(t, "corr-3", pending[2].CorrelationID)
}

func TestFileQueue_AckRemovesHead(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	require.NoError(t, q.Enqueue(ctx, queueOp("corr-1")))
	require.NoError(t, q.Enqueue(ctx, queueOp("corr-2")))

	require.NoError(t, q.Ack(ctx, "corr-1"))

	pending, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "corr-2", pending[0].CorrelationID)
}

func TestFileQueue_AckOutOfOrderRejected(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	require.NoError(t, q.Enqueue(ctx, queueOp("corr-1")))
	require.NoError(t, q.Enqueue(ctx, queueOp("corr-2")))

	err := q.Ack(ctx, "corr-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// Nothing was removed.
	depth, depthErr := q.Depth(ctx)
	require.NoError(t, depthErr)
	assert.Equal(t, 2, depth)
}

func TestFileQueue_AckEmptyQueue(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	err := q.Ack(ctx, "corr-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestFileQueue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.jsonl")

	q1, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	require.NoError(t, q1.Enqueue(ctx, queueOp("corr-1")))
	require.NoError(t, q1.Enqueue(ctx, queueOp("corr-2")))
	require.NoError(t, q1.Close())

	// A new instance loads what the previous run left behind.
	q2, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	defer q2.Close()

	pending, err := q2.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "corr-1", pending[0].CorrelationID)
	assert.Equal(t, "corr-2", pending[1].CorrelationID)
	assert.Equal(t, "FOLIO-1", pending[0].FolioID)
	require.NotNil(t, pending[0].Payment)
	assert.True(t, decimal.NewFromInt(50).Equal(pending[0].Payment.Amount))
}

func TestFileQueue_AckPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.jsonl")

	q1, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	require.NoError(t, q1.Enqueue(ctx, queueOp("corr-1")))
	require.NoError(t, q1.Enqueue(ctx, queueOp("corr-2")))
	require.NoError(t, q1.Ack(ctx, "corr-1"))

	// Enqueue after compaction still lands at the tail.
	require.NoError(t, q1.Enqueue(ctx, queueOp("corr-3")))
	require.NoError(t, q1.Close())

	q2, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	defer q2.Close()

	pending, err := q2.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "corr-2", pending[0].CorrelationID)
	assert.Equal(t, "corr-3", pending[1].CorrelationID)
}

func TestFileQueue_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "queue.jsonl")

	q, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	defer q.Close()

	_, statErr := os.Stat(filepath.Dir(path))
	assert.NoError(t, statErr)
}

func TestFileQueue_SkipsBlankLines(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.jsonl")

	q1, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	require.NoError(t, q1.Enqueue(ctx, queueOp("corr-1")))
	require.NoError(t, q1.Close())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	q2, err := offline.NewFileQueue(path)
	require.NoError(t, err)
	defer q2.Close()

	depth, err := q2.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestFileQueue_CorruptEntryFailsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json\n"), 0o644))

	_, err := offline.NewFileQueue(path)
	assert.Error(t, err)
}
