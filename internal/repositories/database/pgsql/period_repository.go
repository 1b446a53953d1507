package pgsql

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/models"
	"github.com/SscSPs/backoffice_governance/internal/utils/mapping"
)

// PgxPeriodRepository reads accounting periods.
type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(db DB) *PgxPeriodRepository {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PeriodReader = (*PgxPeriodRepository)(nil)

const findPeriodByIDQuery = `
	SELECT period_id, tenant_id, name, status, start_date, end_date
	FROM accounting_periods
	WHERE tenant_id = $1 AND period_id = $2;
`

// FindPeriodByID implements portsrepo.PeriodReader
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	var m models.AccountingPeriod
	err := r.Pool.QueryRow(ctx, findPeriodByIDQuery, tenantID, periodID).Scan(
		&m.PeriodID,
		&m.TenantID,
		&m.Name,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
	)
	if err != nil {
		return nil, notFound(err, "accounting period", periodID)
	}
	period := mapping.ToDomainAccountingPeriod(m)
	return &period, nil
}
