package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the folio_payments table row. Insert-only.
type Payment struct {
	PaymentID string          `json:"paymentId"` // Primary Key, e.g. "PAY-{uuid}"
	FolioID   string          `json:"folioId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference *string         `json:"reference"`

	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
}
