package mapping

import (
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/models"
)

// ToDomainActor converts a tenant membership row to an Actor.
func ToDomainActor(m models.TenantMember) domain.Actor {
	return domain.Actor{
		UserID:      m.UserID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Permissions: domain.NewPermissionSet(m.Permissions...),
	}
}

// ToDomainSoDRule converts a model SoDRule to a domain SoDRule
func ToDomainSoDRule(m models.SoDRule) domain.SoDRule {
	return domain.SoDRule{
		RuleCode:    m.RuleCode,
		TenantID:    m.TenantID,
		PermissionA: m.PermissionA,
		PermissionB: m.PermissionB,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainTenantPolicy assembles a tenant policy from its row and SoD rules.
// An empty stored rule list keeps the default separation rules.
func ToDomainTenantPolicy(m models.TenantPolicy, rules []models.SoDRule) domain.TenantPolicy {
	p := domain.DefaultTenantPolicy(m.TenantID)
	p.AllowSelfPosting = m.AllowSelfPosting
	if m.TaxTolerance.IsPositive() {
		p.TaxTolerance = m.TaxTolerance
	}
	if len(m.SeparationRules) > 0 {
		p.SeparationRules = make([]domain.SeparationRule, len(m.SeparationRules))
		for i, r := range m.SeparationRules {
			p.SeparationRules[i] = domain.SeparationRule{
				RuleCode: r.RuleCode,
				FieldA:   domain.TrailField(r.FieldA),
				FieldB:   domain.TrailField(r.FieldB),
			}
		}
	}
	p.SoDRules = make([]domain.SoDRule, len(rules))
	for i, r := range rules {
		p.SoDRules[i] = ToDomainSoDRule(r)
	}
	return p
}
