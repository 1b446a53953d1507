package pgsql

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/models"
	"github.com/SscSPs/backoffice_governance/internal/utils/mapping"
)

// PgxCatalogRepository reads account flags and tax rates.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(db DB) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CatalogReader = (*PgxCatalogRepository)(nil)

// FindAccountsByIDs implements portsrepo.CatalogReader
func (r *PgxCatalogRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	query, args, err := psql.
		Select("account_id", "tenant_id", "code", "name", "category",
			"is_posting_allowed", "is_frozen", "is_control_account",
			"requires_legal_entity", "requires_department", "requires_project", "requires_fund").
		From("accounts").
		Where(squirrel.Eq{"tenant_id": tenantID, "account_id": accountIDs}).
		ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build accounts query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.TenantID,
			&m.Code,
			&m.Name,
			&m.Category,
			&m.IsPostingAllowed,
			&m.IsFrozen,
			&m.IsControlAccount,
			&m.RequiresLegalEntity,
			&m.RequiresDepartment,
			&m.RequiresProject,
			&m.RequiresFund,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate accounts", err)
	}
	return accounts, nil
}

// FindTaxRatesByIDs implements portsrepo.CatalogReader
func (r *PgxCatalogRepository) FindTaxRatesByIDs(ctx context.Context, tenantID string, taxRateIDs []string) (map[string]domain.TaxRate, error) {
	rates := make(map[string]domain.TaxRate, len(taxRateIDs))
	if len(taxRateIDs) == 0 {
		return rates, nil
	}

	query, args, err := psql.
		Select("tax_rate_id", "tenant_id", "code", "rate").
		From("tax_rates").
		Where(squirrel.Eq{"tenant_id": tenantID, "tax_rate_id": taxRateIDs}).
		ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build tax rates query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TaxRate
		if err := rows.Scan(&m.TaxRateID, &m.TenantID, &m.Code, &m.Rate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate", err)
		}
		rates[m.TaxRateID] = mapping.ToDomainTaxRate(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate tax rates", err)
	}
	return rates, nil
}
