package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

// syncService wraps the mutating ledger operations with offline capture.
// A mutation that fails because the store is unreachable is appended to the
// durable local queue and reported as accepted-for-sync; a mutation the
// store rejected (validation, illegal transition, unknown folio) is never
// queued, because retrying it later cannot succeed.
type syncService struct {
	folioSvc   portssvc.FolioSvcFacade
	paymentSvc portssvc.PaymentSvcFacade
	queue      portsrepo.OfflineQueue
	now        func() time.Time

	// Serializes replay passes. The background replayer and the manual
	// replay endpoint share this service; two passes running at once would
	// both apply the head operation before either acknowledges it.
	replayMu sync.Mutex
}

// NewSyncService creates a new SyncService.
func NewSyncService(folioSvc portssvc.FolioSvcFacade, paymentSvc portssvc.PaymentSvcFacade, queue portsrepo.OfflineQueue) portssvc.SyncSvcFacade {
	return &syncService{
		folioSvc:   folioSvc,
		paymentSvc: paymentSvc,
		queue:      queue,
		now:        time.Now,
	}
}

// Ensure syncService implements the portssvc.SyncSvcFacade interface
var _ portssvc.SyncSvcFacade = (*syncService)(nil)

// isRetryable reports whether a failed operation could succeed on a later
// attempt. Rejections by the store itself are final.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrForbidden):
		return false
	}
	return true
}

func queuedActor(actor domain.Actor) dto.QueuedActor {
	return dto.QueuedActor{
		StaffID:     actor.StaffID,
		DisplayName: actor.DisplayName,
		Role:        actor.Role,
	}
}

func (s *syncService) enqueue(ctx context.Context, op dto.QueuedOperation, cause error) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	op.CorrelationID = uuid.NewString()
	op.EnqueuedAt = s.now()
	if err := s.queue.Enqueue(ctx, op); err != nil {
		logger.Error("Failed to queue offline operation", slog.String("kind", string(op.Kind)), slog.String("error", err.Error()))
		// Neither the store nor the local queue took the write; surface the
		// original failure.
		return cause
	}
	logger.Warn("Store unreachable, operation captured for later sync",
		slog.String("kind", string(op.Kind)),
		slog.String("correlation_id", op.CorrelationID),
		slog.String("cause", cause.Error()),
	)
	return nil
}

// SubmitBarSale runs an instant bar sale, queueing it when the store is
// unreachable. The returned bool reports whether the operation was queued.
func (s *syncService) SubmitBarSale(ctx context.Context, req dto.CreateBarSaleRequest, actor domain.Actor) (*portssvc.BarSaleResult, bool, error) {
	result, err := s.folioSvc.CreateBarSale(ctx, req, actor)
	if err == nil {
		return result, false, nil
	}
	if !isRetryable(err) {
		return nil, false, err
	}
	op := dto.QueuedOperation{
		Kind:    dto.OpBarSale,
		Actor:   queuedActor(actor),
		BarSale: &req,
	}
	if qErr := s.enqueue(ctx, op, err); qErr != nil {
		return nil, false, qErr
	}
	return nil, true, nil
}

// SubmitCharge runs a line item append, queueing it when the store is
// unreachable.
func (s *syncService) SubmitCharge(ctx context.Context, folioID string, req dto.AddLineItemRequest, actor domain.Actor) (*domain.FolioLineItem, bool, error) {
	item, _, err := s.folioSvc.AddLineItem(ctx, folioID, req, actor)
	if err == nil {
		return item, false, nil
	}
	if !isRetryable(err) {
		return nil, false, err
	}
	op := dto.QueuedOperation{
		Kind:    dto.OpCharge,
		Actor:   queuedActor(actor),
		FolioID: folioID,
		Charge:  &req,
	}
	if qErr := s.enqueue(ctx, op, err); qErr != nil {
		return nil, false, qErr
	}
	return nil, true, nil
}

// SubmitPayment runs a payment, queueing it when the store is unreachable.
func (s *syncService) SubmitPayment(ctx context.Context, folioID string, req dto.AddPaymentRequest, actor domain.Actor) (*portsrepo.PaymentOutcome, bool, error) {
	outcome, err := s.paymentSvc.AddPaymentToFolio(ctx, folioID, req, actor)
	if err == nil {
		return outcome, false, nil
	}
	if !isRetryable(err) {
		return nil, false, err
	}
	op := dto.QueuedOperation{
		Kind:    dto.OpPayment,
		Actor:   queuedActor(actor),
		FolioID: folioID,
		Payment: &req,
	}
	if qErr := s.enqueue(ctx, op, err); qErr != nil {
		return nil, false, qErr
	}
	return nil, true, nil
}

// SubmitVoid runs a folio void, queueing it when the store is unreachable.
func (s *syncService) SubmitVoid(ctx context.Context, folioID string, req dto.VoidFolioRequest, actor domain.Actor) (bool, error) {
	err := s.folioSvc.VoidFolio(ctx, folioID, req.Reason, actor)
	if err == nil {
		return false, nil
	}
	if !isRetryable(err) {
		return false, err
	}
	op := dto.QueuedOperation{
		Kind:    dto.OpVoid,
		Actor:   queuedActor(actor),
		FolioID: folioID,
		Void:    &req,
	}
	if qErr := s.enqueue(ctx, op, err); qErr != nil {
		return false, qErr
	}
	return true, nil
}

// Replay pushes queued operations to the store in strict enqueue order and
// halts at the first failure: later operations may depend on earlier ones,
// so nothing is skipped. An operation is acknowledged only after the store
// confirmed its write.
func (s *syncService) Replay(ctx context.Context) (*dto.ReplayResultResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !s.replayMu.TryLock() {
		// Another pass is already draining the queue; running a second one
		// concurrently would apply its head operation twice.
		return &dto.ReplayResultResponse{InProgress: true}, nil
	}
	defer s.replayMu.Unlock()

	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.ReplayResultResponse{Remaining: len(pending)}
	for _, op := range pending {
		if ctx.Err() != nil {
			result.Halted = true
			return result, nil
		}
		if execErr := s.execute(ctx, op); execErr != nil {
			logger.Warn("Replay halted at queued operation",
				slog.String("correlation_id", op.CorrelationID),
				slog.String("kind", string(op.Kind)),
				slog.String("error", execErr.Error()),
			)
			result.Halted = true
			return result, nil
		}
		if ackErr := s.queue.Ack(ctx, op.CorrelationID); ackErr != nil {
			return nil, ackErr
		}
		result.Synced++
		result.Remaining--
	}
	return result, nil
}

func (s *syncService) execute(ctx context.Context, op dto.QueuedOperation) error {
	actor := domain.Actor{
		StaffID:     op.Actor.StaffID,
		DisplayName: op.Actor.DisplayName,
		Role:        op.Actor.Role,
	}
	switch op.Kind {
	case dto.OpBarSale:
		if op.BarSale == nil {
			return apperrors.NewAppError(500, "queued bar sale operation has no payload", apperrors.ErrValidation)
		}
		_, err := s.folioSvc.CreateBarSale(ctx, *op.BarSale, actor)
		return err
	case dto.OpCharge:
		if op.Charge == nil {
			return apperrors.NewAppError(500, "queued charge operation has no payload", apperrors.ErrValidation)
		}
		// The correlation ID pins the item ID, so retrying after a failed
		// acknowledgment cannot insert the charge twice.
		req := *op.Charge
		req.CorrelationID = op.CorrelationID
		_, _, err := s.folioSvc.AddLineItem(ctx, op.FolioID, req, actor)
		return err
	case dto.OpPayment:
		if op.Payment == nil {
			return apperrors.NewAppError(500, "queued payment operation has no payload", apperrors.ErrValidation)
		}
		req := *op.Payment
		req.CorrelationID = op.CorrelationID
		_, err := s.paymentSvc.AddPaymentToFolio(ctx, op.FolioID, req, actor)
		return err
	case dto.OpVoid:
		if op.Void == nil {
			return apperrors.NewAppError(500, "queued void operation has no payload", apperrors.ErrValidation)
		}
		return s.folioSvc.VoidFolio(ctx, op.FolioID, op.Void.Reason, actor)
	}
	return apperrors.NewAppError(500, "unknown queued operation kind "+string(op.Kind), apperrors.ErrValidation)
}

// Status reports the queue depth and the age of its head.
func (s *syncService) Status(ctx context.Context) (*dto.SyncStatusResponse, error) {
	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return nil, err
	}
	status := &dto.SyncStatusResponse{PendingOperations: len(pending)}
	if len(pending) > 0 {
		oldest := pending[0].EnqueuedAt
		status.OldestEnqueuedAt = &oldest
	}
	return status, nil
}
