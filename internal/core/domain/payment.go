package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was taken.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodCard   PaymentMethod = "CARD"
	MethodMomo   PaymentMethod = "MOMO"
	MethodRoom   PaymentMethod = "ROOM"
	MethodCredit PaymentMethod = "CREDIT"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCard, MethodMomo, MethodRoom, MethodCredit:
		return true
	}
	return false
}

// Payment is an append-only record of money received against a folio.
// Payments are never updated or deleted.
type Payment struct {
	PaymentID string          `json:"paymentId"`
	FolioID   string          `json:"folioId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Reference *string         `json:"reference"`

	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
}
