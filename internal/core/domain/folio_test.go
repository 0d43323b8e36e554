package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid decimal.Decimal
		grandTotal decimal.Decimal
		want       domain.PaymentStatus
	}{
		{
			name:       "nothing paid",
			amountPaid: decimal.Zero,
			grandTotal: decimal.NewFromInt(100),
			want:       domain.PaymentUnpaid,
		},
		{
			name:       "partially paid",
			amountPaid: decimal.NewFromInt(40),
			grandTotal: decimal.NewFromInt(100),
			want:       domain.PaymentPartial,
		},
		{
			name:       "exactly paid",
			amountPaid: decimal.NewFromInt(100),
			grandTotal: decimal.NewFromInt(100),
			want:       domain.PaymentPaid,
		},
		{
			name:       "overpaid",
			amountPaid: decimal.NewFromInt(120),
			grandTotal: decimal.NewFromInt(100),
			want:       domain.PaymentOverpaid,
		},
		{
			name:       "zero total and zero paid is unpaid",
			amountPaid: decimal.Zero,
			grandTotal: decimal.Zero,
			want:       domain.PaymentUnpaid,
		},
		{
			name:       "any payment against zero total is overpaid",
			amountPaid: decimal.NewFromInt(10),
			grandTotal: decimal.Zero,
			want:       domain.PaymentOverpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PaymentStatusFor(tt.amountPaid, tt.grandTotal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFolio_Balance(t *testing.T) {
	f := domain.Folio{
		GrandTotal: decimal.NewFromInt(100),
		AmountPaid: decimal.NewFromInt(30),
	}
	assert.True(t, decimal.NewFromInt(70).Equal(f.Balance()))

	// Overpayment never yields a negative balance.
	f.AmountPaid = decimal.NewFromInt(150)
	assert.True(t, f.Balance().IsZero())
}

func TestFolioStatus_IsMutable(t *testing.T) {
	assert.True(t, domain.FolioOpen.IsMutable())
	assert.True(t, domain.FolioPartPaid.IsMutable())
	assert.False(t, domain.FolioClosed.IsMutable())
	assert.False(t, domain.FolioVoided.IsMutable())
}

func TestFolioStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.FolioOpen.IsTerminal())
	assert.False(t, domain.FolioPartPaid.IsTerminal())
	assert.True(t, domain.FolioClosed.IsTerminal())
	assert.True(t, domain.FolioVoided.IsTerminal())
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []domain.PaymentMethod{
		domain.MethodCash,
		domain.MethodCard,
		domain.MethodMomo,
		domain.MethodRoom,
		domain.MethodCredit,
	} {
		assert.True(t, domain.ValidPaymentMethod(m), string(m))
	}
	assert.False(t, domain.ValidPaymentMethod("BARTER"))
	assert.False(t, domain.ValidPaymentMethod(""))
}
