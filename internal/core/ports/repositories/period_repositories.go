package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// PeriodReader supplies accounting period snapshots.
type PeriodReader interface {
	FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error)
}
