package services

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// SyncSvcFacade wraps the ledger mutations with offline capture: when the
// store is unreachable the operation is queued durably and reported as
// queued success. Validation failures are never queued.
type SyncSvcFacade interface {
	// SubmitBarSale runs or queues an instant bar sale.
	SubmitBarSale(ctx context.Context, req dto.CreateBarSaleRequest, actor domain.Actor) (*BarSaleResult, bool, error)

	// SubmitCharge runs or queues a line item append.
	SubmitCharge(ctx context.Context, folioID string, req dto.AddLineItemRequest, actor domain.Actor) (*domain.FolioLineItem, bool, error)

	// SubmitPayment runs or queues a payment.
	SubmitPayment(ctx context.Context, folioID string, req dto.AddPaymentRequest, actor domain.Actor) (*repositories.PaymentOutcome, bool, error)

	// SubmitVoid runs or queues a folio void.
	SubmitVoid(ctx context.Context, folioID string, req dto.VoidFolioRequest, actor domain.Actor) (bool, error)

	// Replay pushes queued operations to the store in strict FIFO order,
	// halting at the first failure.
	Replay(ctx context.Context) (*dto.ReplayResultResponse, error)

	// Status reports the queue depth and age.
	Status(ctx context.Context) (*dto.SyncStatusResponse, error)
}
