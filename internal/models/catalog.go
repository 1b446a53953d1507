package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a GL account row as the governance service reads it.
type Account struct {
	AccountID           string `db:"account_id"`
	TenantID            string `db:"tenant_id"`
	Code                string `db:"code"`
	Name                string `db:"name"`
	Category            string `db:"category"`
	IsPostingAllowed    bool   `db:"is_posting_allowed"`
	IsFrozen            bool   `db:"is_frozen"`
	IsControlAccount    bool   `db:"is_control_account"`
	RequiresLegalEntity bool   `db:"requires_legal_entity"`
	RequiresDepartment  bool   `db:"requires_department"`
	RequiresProject     bool   `db:"requires_project"`
	RequiresFund        bool   `db:"requires_fund"`
}

// TaxRate is a tax_rates row.
type TaxRate struct {
	TaxRateID string          `db:"tax_rate_id"`
	TenantID  string          `db:"tenant_id"`
	Code      string          `db:"code"`
	Rate      decimal.Decimal `db:"rate"`
}

// AccountingPeriod is an accounting_periods row.
type AccountingPeriod struct {
	PeriodID  string    `db:"period_id"`
	TenantID  string    `db:"tenant_id"`
	Name      string    `db:"name"`
	Status    string    `db:"status"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}
