package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container. Constructed once at startup.
type RepositoryProvider struct {
	FolioRepo   FolioRepositoryFacade
	InvoiceRepo InvoiceRepositoryFacade
	AuditRepo   AuditLogRepositoryFacade
	StaffRepo   StaffRepositoryFacade
	LegacyRepo  LegacyBridgeRepositoryFacade
}
