package services

import (
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
)

// ContainerDeps carries the non-repository dependencies of the service
// container: sync queue, tax configuration and token settings.
type ContainerDeps struct {
	Queue         portsrepo.OfflineQueue
	TaxRate       decimal.Decimal
	JWTSecret     string
	TokenValidity time.Duration
	TokenIssuer   string
}

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, deps ContainerDeps) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first since every mutating service depends on it
	container.Audit = NewAuditService(repos.AuditRepo)

	container.Folio = NewFolioService(repos.FolioRepo, repos.LegacyRepo, container.Audit, deps.TaxRate)
	container.Payment = NewPaymentService(repos.FolioRepo, container.Audit)
	container.Invoice = NewInvoiceService(repos.FolioRepo, repos.InvoiceRepo, container.Audit)
	container.Sync = NewSyncService(container.Folio, container.Payment, deps.Queue)
	container.Auth = NewAuthService(repos.StaffRepo, deps.JWTSecret, deps.TokenValidity, deps.TokenIssuer)

	return container
}
