package repositories

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
)

// StaffRepositoryFacade reads the staff identities the ledger attributes
// operations to. Staff management itself is owned by the surrounding app.
type StaffRepositoryFacade interface {
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
}

// LegacyBridgeRepositoryFacade stamps legacy v1 sales records with the
// folio that absorbed them. Used only during the migration period.
type LegacyBridgeRepositoryFacade interface {
	LinkSaleToFolio(ctx context.Context, salesID string, folioID string) error
}
