package services

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// PaymentSvcFacade records payments and drives payment-side status
// transitions, including payment-driven auto-close with invoice emission.
type PaymentSvcFacade interface {
	AddPaymentToFolio(ctx context.Context, folioID string, req dto.AddPaymentRequest, actor domain.Actor) (*repositories.PaymentOutcome, error)
}
