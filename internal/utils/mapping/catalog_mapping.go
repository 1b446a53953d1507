package mapping

import (
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:           m.AccountID,
		TenantID:            m.TenantID,
		Code:                m.Code,
		Name:                m.Name,
		Category:            domain.AccountCategory(m.Category),
		IsPostingAllowed:    m.IsPostingAllowed,
		IsFrozen:            m.IsFrozen,
		IsControlAccount:    m.IsControlAccount,
		RequiresLegalEntity: m.RequiresLegalEntity,
		RequiresDepartment:  m.RequiresDepartment,
		RequiresProject:     m.RequiresProject,
		RequiresFund:        m.RequiresFund,
	}
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		TaxRateID: m.TaxRateID,
		Code:      m.Code,
		Rate:      m.Rate,
	}
}

// ToDomainAccountingPeriod converts a model AccountingPeriod to a domain AccountingPeriod
func ToDomainAccountingPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:  m.PeriodID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Status:    domain.PeriodStatus(m.Status),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
}
