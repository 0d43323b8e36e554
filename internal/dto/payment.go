package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// AddPaymentRequest records a payment against an open folio.
type AddPaymentRequest struct {
	Amount    decimal.Decimal      `json:"amount" binding:"required"`
	Method    domain.PaymentMethod `json:"method" binding:"required"`
	Reference *string              `json:"reference"`

	// Set only by offline replay, never from the wire. When present it pins
	// the payment ID so a retried operation cannot record a second payment.
	CorrelationID string `json:"-"`
}

// PaymentResponse is the wire shape of a recorded payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentId"`
	FolioID       string               `json:"folioId"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	Reference     *string              `json:"reference,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedByName string               `json:"createdByName"`
}

// PaymentResultResponse reports the folio state after a payment landed.
type PaymentResultResponse struct {
	PaymentID     string               `json:"paymentId"`
	NewStatus     domain.FolioStatus   `json:"newStatus"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	Balance       decimal.Decimal      `json:"balance"`
	InvoiceID     *string              `json:"invoiceId,omitempty"`
	InvoiceNumber *string              `json:"invoiceNumber,omitempty"`
	Queued        bool                 `json:"queued"`
}

// ToPaymentResponse converts a domain payment to its wire shape.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		FolioID:       p.FolioID,
		Amount:        p.Amount,
		Method:        p.Method,
		Reference:     p.Reference,
		CreatedAt:     p.CreatedAt,
		CreatedByName: p.CreatedByName,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = ToPaymentResponse(p)
	}
	return out
}
