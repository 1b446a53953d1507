package pgsql

import (
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
// defaultTaxTolerance is used for tenants without a stored tolerance.
func NewRepositoryProvider(db DB, defaultTaxTolerance decimal.Decimal) portsrepo.RepositoryProvider {
	accessRepo := newPgxAccessRepository(db, defaultTaxTolerance)

	return portsrepo.RepositoryProvider{
		ActorRepo:    accessRepo,
		PolicyRepo:   accessRepo,
		DocumentRepo: newPgxDocumentRepository(db),
		PeriodRepo:   newPgxPeriodRepository(db),
		CatalogRepo:  newPgxCatalogRepository(db),
		AuditRepo:    newPgxAuditRepository(db),
		APITokenRepo: newPgxAPITokenRepository(db),
	}
}
