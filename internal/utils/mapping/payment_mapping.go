package mapping

import (
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		FolioID:       d.FolioID,
		Amount:        d.Amount,
		Method:        string(d.Method),
		Reference:     d.Reference,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		CreatedByName: d.CreatedByName,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		FolioID:       m.FolioID,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.Method),
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		CreatedByName: m.CreatedByName,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
