package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		FolioRepo:   newPgxFolioRepository(pool),
		InvoiceRepo: newPgxInvoiceRepository(pool),
		AuditRepo:   newPgxAuditLogRepository(pool),
		StaffRepo:   newPgxStaffRepository(pool),
		LegacyRepo:  newPgxLegacyBridgeRepository(pool),
	}
}
