package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

func TestCounterKind_Prefix(t *testing.T) {
	assert.Equal(t, "F", domain.CounterFolio.Prefix())
	assert.Equal(t, "INV", domain.CounterInvoice.Prefix())
}

func TestFormatSequenceNumber(t *testing.T) {
	assert.Equal(t, "F-2026-00001", domain.FormatSequenceNumber(domain.CounterFolio, 2026, 1))
	assert.Equal(t, "INV-2026-00042", domain.FormatSequenceNumber(domain.CounterInvoice, 2026, 42))
	// Numbers past the pad width keep all digits.
	assert.Equal(t, "F-2026-123456", domain.FormatSequenceNumber(domain.CounterFolio, 2026, 123456))
}
