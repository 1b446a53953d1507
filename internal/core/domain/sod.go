package domain

import "github.com/shopspring/decimal"

// SoDRule forbids one individual from accumulating both permissions on the same document.
type SoDRule struct {
	RuleCode    string `json:"ruleCode"`
	TenantID    string `json:"tenantID"`
	PermissionA string `json:"permissionA"`
	PermissionB string `json:"permissionB"`
	Description string `json:"description,omitempty"`
	AuditFields
}

// Pairs reports whether the rule involves permission and returns its counterpart.
func (r SoDRule) Pairs(permission string) (string, bool) {
	switch permission {
	case r.PermissionA:
		return r.PermissionB, true
	case r.PermissionB:
		return r.PermissionA, true
	}
	return "", false
}

// SeparationRule requires two actor-trail slots to be filled by different actors.
type SeparationRule struct {
	RuleCode string     `json:"ruleCode"`
	FieldA   TrailField `json:"fieldA"`
	FieldB   TrailField `json:"fieldB"`
}

// DefaultSeparationRules are applied when a tenant has not configured its own.
func DefaultSeparationRules() []SeparationRule {
	return []SeparationRule{
		{RuleCode: "SOD_APPROVER_POSTER", FieldA: TrailApprovedBy, FieldB: TrailPostedBy},
		{RuleCode: "SOD_POSTER_REVERSER", FieldA: TrailPostedBy, FieldB: TrailReversalInitiatedBy},
	}
}

// TenantPolicy is the governance configuration of one tenant, loaded once per request
// and passed explicitly into every evaluation.
type TenantPolicy struct {
	TenantID         string           `json:"tenantID"`
	AllowSelfPosting bool             `json:"allowSelfPosting"`
	TaxTolerance     decimal.Decimal  `json:"taxTolerance"`
	SoDRules         []SoDRule        `json:"sodRules"`
	SeparationRules  []SeparationRule `json:"separationRules"`
}

// DefaultTaxTolerance is the absolute tolerance for recomputed tax amounts.
var DefaultTaxTolerance = decimal.NewFromFloat(0.01)

// DefaultTenantPolicy is used for tenants without stored configuration.
func DefaultTenantPolicy(tenantID string) TenantPolicy {
	return TenantPolicy{
		TenantID:        tenantID,
		TaxTolerance:    DefaultTaxTolerance,
		SeparationRules: DefaultSeparationRules(),
	}
}
