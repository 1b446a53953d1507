package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/models"
	"github.com/SscSPs/backoffice_governance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgxAccessRepository reads tenant memberships and tenant governance policies.
type PgxAccessRepository struct {
	BaseRepository
	defaultTaxTolerance decimal.Decimal
}

func newPgxAccessRepository(db DB, defaultTaxTolerance decimal.Decimal) *PgxAccessRepository {
	return &PgxAccessRepository{
		BaseRepository:      BaseRepository{Pool: db},
		defaultTaxTolerance: defaultTaxTolerance,
	}
}

var (
	_ portsrepo.ActorReader        = (*PgxAccessRepository)(nil)
	_ portsrepo.TenantPolicyReader = (*PgxAccessRepository)(nil)
)

const (
	findActorQuery = `
		SELECT tenant_id, user_id, name, permissions
		FROM tenant_members
		WHERE tenant_id = $1 AND user_id = $2 AND is_active;
	`

	findTenantPolicyQuery = `
		SELECT tenant_id, allow_self_posting, tax_tolerance, separation_rules
		FROM tenant_policies
		WHERE tenant_id = $1;
	`

	findSoDRulesQuery = `
		SELECT rule_code, tenant_id, permission_a, permission_b, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sod_rules
		WHERE tenant_id = $1 AND is_active
		ORDER BY rule_code;
	`
)

// FindActor implements portsrepo.ActorReader
func (r *PgxAccessRepository) FindActor(ctx context.Context, tenantID, userID string) (*domain.Actor, error) {
	var m models.TenantMember
	err := r.Pool.QueryRow(ctx, findActorQuery, tenantID, userID).Scan(
		&m.TenantID,
		&m.UserID,
		&m.Name,
		&m.Permissions,
	)
	if err != nil {
		return nil, notFound(err, "tenant member", userID)
	}
	actor := mapping.ToDomainActor(m)
	return &actor, nil
}

// FindTenantPolicy implements portsrepo.TenantPolicyReader
func (r *PgxAccessRepository) FindTenantPolicy(ctx context.Context, tenantID string) (*domain.TenantPolicy, error) {
	m := models.TenantPolicy{TenantID: tenantID}
	err := r.Pool.QueryRow(ctx, findTenantPolicyQuery, tenantID).Scan(
		&m.TenantID,
		&m.AllowSelfPosting,
		&m.TaxTolerance,
		&m.SeparationRules,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to load tenant policy "+tenantID, err)
	}
	if !m.TaxTolerance.IsPositive() {
		m.TaxTolerance = r.defaultTaxTolerance
	}

	rows, err := r.Pool.Query(ctx, findSoDRulesQuery, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load SoD rules for tenant "+tenantID, err)
	}
	defer rows.Close()

	var rules []models.SoDRule
	for rows.Next() {
		var rule models.SoDRule
		if err := rows.Scan(
			&rule.RuleCode,
			&rule.TenantID,
			&rule.PermissionA,
			&rule.PermissionB,
			&rule.Description,
			&rule.CreatedAt,
			&rule.CreatedBy,
			&rule.LastUpdatedAt,
			&rule.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan SoD rule", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate SoD rules", err)
	}

	policy := mapping.ToDomainTenantPolicy(m, rules)
	return &policy, nil
}
