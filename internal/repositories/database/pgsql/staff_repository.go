package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	"github.com/sunrisehms/folio_ledger_app/internal/models"
)

type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepositoryFacade
var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

// FindStaffByID retrieves a staff member by ID.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `
		SELECT staff_id, display_name, role, password_hash, is_active, created_at
		FROM staff
		WHERE staff_id = $1;`
	var m models.Staff
	err := r.Pool.QueryRow(ctx, query, staffID).Scan(
		&m.StaffID, &m.DisplayName, &m.Role, &m.PasswordHash, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find staff "+staffID, err)
	}
	return &domain.Staff{
		StaffID:      m.StaffID,
		DisplayName:  m.DisplayName,
		Role:         domain.StaffRole(m.Role),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}, nil
}

type PgxLegacyBridgeRepository struct {
	BaseRepository
}

func newPgxLegacyBridgeRepository(pool *pgxpool.Pool) portsrepo.LegacyBridgeRepositoryFacade {
	return &PgxLegacyBridgeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLegacyBridgeRepository implements portsrepo.LegacyBridgeRepositoryFacade
var _ portsrepo.LegacyBridgeRepositoryFacade = (*PgxLegacyBridgeRepository)(nil)

// LinkSaleToFolio stamps a legacy v1 sale with the folio that absorbed it.
// Linking an already-linked sale is a no-op so replays stay safe.
func (r *PgxLegacyBridgeRepository) LinkSaleToFolio(ctx context.Context, salesID string, folioID string) error {
	query := `
		UPDATE v1_sales
		SET folio_id = $2, is_linked_to_folio = TRUE, linked_at = NOW()
		WHERE sales_id = $1 AND is_linked_to_folio = FALSE;`
	if _, err := r.Pool.Exec(ctx, query, salesID, folioID); err != nil {
		return apperrors.NewAppError(500, "failed to link sale "+salesID+" to folio "+folioID, err)
	}
	return nil
}
