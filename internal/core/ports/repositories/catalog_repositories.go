package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// CatalogReader supplies account flags and tax-rate definitions.
// Missing ids are simply absent from the returned maps.
type CatalogReader interface {
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)
	FindTaxRatesByIDs(ctx context.Context, tenantID string, taxRateIDs []string) (map[string]domain.TaxRate, error)
}
