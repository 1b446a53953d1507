package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ActorRepo    ActorReader
	PolicyRepo   TenantPolicyReader
	DocumentRepo DocumentRepositoryFacade
	PeriodRepo   PeriodReader
	CatalogRepo  CatalogReader
	AuditRepo    AuditRepository
	APITokenRepo APITokenRepository
}
