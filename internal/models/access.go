package models

import "github.com/shopspring/decimal"

// TenantMember is a user's membership of a tenant with its permission snapshot.
type TenantMember struct {
	TenantID    string   `db:"tenant_id"`
	UserID      string   `db:"user_id"`
	Name        string   `db:"name"`
	Permissions []string `db:"permissions"`
}

// TenantPolicy is the stored governance configuration of a tenant.
type TenantPolicy struct {
	TenantID         string           `db:"tenant_id"`
	AllowSelfPosting bool             `db:"allow_self_posting"`
	TaxTolerance     decimal.Decimal  `db:"tax_tolerance"`
	SeparationRules  []SeparationRule `db:"separation_rules"` // jsonb
}

// SeparationRule is one element of tenant_policies.separation_rules.
type SeparationRule struct {
	RuleCode string `json:"ruleCode"`
	FieldA   string `json:"fieldA"`
	FieldB   string `json:"fieldB"`
}

// SoDRule forbids one actor from exercising both permissions on a document.
type SoDRule struct {
	RuleCode    string `db:"rule_code"`
	TenantID    string `db:"tenant_id"`
	PermissionA string `db:"permission_a"`
	PermissionB string `db:"permission_b"`
	Description string `db:"description"`
	AuditFields
}
