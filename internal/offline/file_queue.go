package offline

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// FileQueue is a durable FIFO of pending ledger operations backed by a
// JSON-lines file on local disk. Enqueue appends a line and fsyncs before
// returning, so an operation accepted while the store is unreachable
// survives a process restart or power loss. Ack rewrites the file without
// the head entry via a temp file and rename.
//
// A single queue instance owns the file; all methods are safe for
// concurrent use.
type FileQueue struct {
	path string

	mu   sync.Mutex
	ops  []dto.QueuedOperation
	file *os.File
}

// Ensure FileQueue implements portsrepo.OfflineQueue
var _ portsrepo.OfflineQueue = (*FileQueue)(nil)

// NewFileQueue opens (or creates) the queue file at path and loads any
// operations left over from a previous run.
func NewFileQueue(path string) (*FileQueue, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create offline queue directory: %w", err)
	}

	q := &FileQueue{path: path}
	if err := q.load(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open offline queue file %s: %w", path, err)
	}
	q.file = f
	return q, nil
}

func (q *FileQueue) load() error {
	f, err := os.Open(q.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read offline queue file %s: %w", q.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var op dto.QueuedOperation
		if err := json.Unmarshal(line, &op); err != nil {
			return fmt.Errorf("corrupt offline queue entry in %s: %w", q.path, err)
		}
		q.ops = append(q.ops, op)
	}
	return scanner.Err()
}

// Enqueue durably appends an operation to the tail of the queue.
func (q *FileQueue) Enqueue(ctx context.Context, op dto.QueuedOperation) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	line, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to encode queued operation %s: %w", op.CorrelationID, err)
	}
	line = append(line, '\n')

	if _, err := q.file.Write(line); err != nil {
		return fmt.Errorf("failed to append queued operation %s: %w", op.CorrelationID, err)
	}
	if err := q.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync offline queue file: %w", err)
	}

	q.ops = append(q.ops, op)
	return nil
}

// Pending returns all queued operations in enqueue order.
func (q *FileQueue) Pending(ctx context.Context) ([]dto.QueuedOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]dto.QueuedOperation, len(q.ops))
	copy(out, q.ops)
	return out, nil
}

// Ack removes the head operation after its store write was confirmed. The
// queue never acknowledges out of order: a correlation ID that is not the
// current head is rejected.
func (q *FileQueue) Ack(ctx context.Context, correlationID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.ops) == 0 {
		return apperrors.NewAppError(409, "offline queue is empty", apperrors.ErrConflict)
	}
	if q.ops[0].CorrelationID != correlationID {
		return apperrors.NewAppError(409, "operation "+correlationID+" is not at the head of the offline queue", apperrors.ErrConflict)
	}

	remaining := q.ops[1:]
	if err := q.rewrite(remaining); err != nil {
		return err
	}
	q.ops = remaining
	return nil
}

// Depth reports how many operations are waiting.
func (q *FileQueue) Depth(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops), nil
}

// Close releases the underlying file handle.
func (q *FileQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.file == nil {
		return nil
	}
	err := q.file.Close()
	q.file = nil
	return err
}

// rewrite replaces the queue file with the given operations using a temp
// file and an atomic rename, then reopens the append handle.
func (q *FileQueue) rewrite(ops []dto.QueuedOperation) error {
	tmpPath := q.path + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create offline queue temp file: %w", err)
	}
	for _, op := range ops {
		line, marshalErr := json.Marshal(op)
		if marshalErr != nil {
			tmp.Close()
			return fmt.Errorf("failed to encode queued operation %s: %w", op.CorrelationID, marshalErr)
		}
		if _, writeErr := tmp.Write(append(line, '\n')); writeErr != nil {
			tmp.Close()
			return fmt.Errorf("failed to write offline queue temp file: %w", writeErr)
		}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync offline queue temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close offline queue temp file: %w", err)
	}
	if err := os.Rename(tmpPath, q.path); err != nil {
		return fmt.Errorf("failed to replace offline queue file: %w", err)
	}

	if q.file != nil {
		q.file.Close()
	}
	f, err := os.OpenFile(q.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to reopen offline queue file: %w", err)
	}
	q.file = f
	return nil
}
