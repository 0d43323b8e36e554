package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

func TestInvoicePaymentStatus(t *testing.T) {
	assert.Equal(t, domain.PaymentPaid, domain.InvoicePaymentStatus(domain.PaymentOverpaid))
	assert.Equal(t, domain.PaymentPaid, domain.InvoicePaymentStatus(domain.PaymentPaid))
	assert.Equal(t, domain.PaymentPartial, domain.InvoicePaymentStatus(domain.PaymentPartial))
	assert.Equal(t, domain.PaymentUnpaid, domain.InvoicePaymentStatus(domain.PaymentUnpaid))
}

func barFolioFixture() domain.Folio {
	contact := "+233201234567"
	center := "bar"
	return domain.Folio{
		FolioID:       "FOLIO-BAR-SALE-1",
		FolioNumber:   "F-2026-00007",
		FolioType:     domain.FolioBar,
		Status:        domain.FolioClosed,
		OwnerName:     "Walk-in Customer",
		OwnerContact:  &contact,
		Subtotal:      decimal.NewFromInt(100),
		DiscountTotal: decimal.NewFromInt(10),
		TaxTotal:      decimal.NewFromInt(9),
		GrandTotal:    decimal.NewFromInt(99),
		ServiceCenter: &center,
		V1LinkedRecords: domain.V1LinkedRecords{
			SalesIDs: []string{"SALE-1"},
		},
	}
}

func TestNewInvoiceFromFolio(t *testing.T) {
	folio := barFolioFixture()
	items := []domain.FolioLineItem{
		{
			Description:    "Club Beer",
			Quantity:       decimal.NewFromInt(4),
			UnitPrice:      decimal.NewFromInt(25),
			Subtotal:       decimal.NewFromInt(100),
			DiscountAmount: decimal.NewFromInt(10),
			TaxAmount:      decimal.NewFromInt(9),
			TotalAmount:    decimal.NewFromInt(99),
			Category:       "drinks",
		},
	}
	actor := domain.Actor{StaffID: "STAFF-1", DisplayName: "Ama", Role: domain.RoleStaff}
	issuedAt := time.Date(2026, 8, 30, 21, 15, 0, 0, time.UTC)

	inv := domain.NewInvoiceFromFolio("INV-abc", "INV-2026-00012", folio, items, domain.MethodCash, decimal.NewFromInt(99), actor, issuedAt, nil)

	assert.Equal(t, "INV-abc", inv.InvoiceID)
	assert.Equal(t, "INV-2026-00012", inv.InvoiceNumber)
	assert.Equal(t, folio.FolioID, inv.FolioID)
	assert.Equal(t, folio.FolioNumber, inv.FolioNumber)
	assert.Equal(t, folio.OwnerName, inv.CustomerName)
	assert.Equal(t, folio.OwnerContact, inv.CustomerContact)
	assert.Equal(t, issuedAt, inv.IssuedAt)
	assert.Equal(t, actor.StaffID, inv.IssuedBy)
	assert.Equal(t, actor.DisplayName, inv.IssuedByName)

	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "Club Beer", inv.LineItems[0].Description)
	assert.True(t, decimal.NewFromInt(99).Equal(inv.LineItems[0].TotalAmount))

	assert.True(t, decimal.NewFromInt(99).Equal(inv.GrandTotal))
	assert.True(t, decimal.NewFromInt(99).Equal(inv.AmountPaid))
	assert.True(t, inv.AmountDue.IsZero())
	assert.Equal(t, domain.PaymentPaid, inv.PaymentStatus)
	require.NotNil(t, inv.PaymentMethod)
	assert.Equal(t, domain.MethodCash, *inv.PaymentMethod)
	assert.Equal(t, []string{"SALE-1"}, inv.V1SalesIDs)
	assert.Zero(t, inv.PrintCount)

	// A BAR folio carries no checkout date.
	assert.Nil(t, inv.CheckOutDate)
}

func TestNewInvoiceFromFolio_OverpaidCollapsesToPaid(t *testing.T) {
	folio := barFolioFixture()
	actor := domain.Actor{StaffID: "STAFF-1", DisplayName: "Ama"}

	inv := domain.NewInvoiceFromFolio("INV-x", "INV-2026-00013", folio, nil, domain.MethodCash, decimal.NewFromInt(120), actor, time.Now(), nil)

	assert.Equal(t, domain.PaymentPaid, inv.PaymentStatus)
	// AmountDue never goes negative.
	assert.True(t, inv.AmountDue.IsZero())
}

func TestNewInvoiceFromFolio_PartialCreditCheckout(t *testing.T) {
	folio := barFolioFixture()
	actor := domain.Actor{StaffID: "STAFF-1", DisplayName: "Ama"}

	inv := domain.NewInvoiceFromFolio("INV-y", "INV-2026-00014", folio, nil, domain.MethodCredit, decimal.NewFromInt(40), actor, time.Now(), nil)

	assert.Equal(t, domain.PaymentPartial, inv.PaymentStatus)
	assert.True(t, decimal.NewFromInt(59).Equal(inv.AmountDue))
}

func TestNewInvoiceFromFolio_RoomCheckoutStamp(t *testing.T) {
	roomNumber := "204"
	checkIn := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	folio := barFolioFixture()
	folio.FolioType = domain.FolioRoom
	folio.RoomNumber = &roomNumber
	folio.CheckInDate = &checkIn

	checkoutID := "CHK-55"
	issuedAt := time.Date(2026, 8, 31, 11, 0, 0, 0, time.UTC)
	actor := domain.Actor{StaffID: "STAFF-2", DisplayName: "Kofi"}

	inv := domain.NewInvoiceFromFolio("INV-z", "INV-2026-00015", folio, nil, domain.MethodCard, folio.GrandTotal, actor, issuedAt, &checkoutID)

	assert.Equal(t, &roomNumber, inv.RoomNumber)
	assert.Equal(t, &checkIn, inv.CheckInDate)
	require.NotNil(t, inv.CheckOutDate)
	assert.Equal(t, issuedAt, *inv.CheckOutDate)
	require.NotNil(t, inv.V1CheckoutID)
	assert.Equal(t, "CHK-55", *inv.V1CheckoutID)
}
