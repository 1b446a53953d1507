package governance_test

import (
	"testing"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vatRates() map[string]domain.TaxRate {
	return map[string]domain.TaxRate{
		"vat16": {TaxRateID: "vat16", Code: "VAT16", Rate: dec("0.16")},
		"wht2":  {TaxRateID: "wht2", Code: "WHT2", Rate: dec("0.02")},
	}
}

func TestValidateTaxIntegrity_WrongAmount(t *testing.T) {
	err := governance.ValidateTaxIntegrity(governance.TaxInput{
		DocumentID: "inv-1",
		TaxLines: []domain.TaxLine{
			{TaxLineID: "tx-1", SourceType: domain.TaxSourceLine, SourceID: "L1", TaxRateID: "vat16", TaxableAmount: dec("1000"), TaxAmount: dec("150")},
		},
		Rates: vatRates(),
	})

	var taxErr *apperrors.TaxIntegrityViolationError
	require.ErrorAs(t, err, &taxErr)
	assert.ErrorIs(t, err, apperrors.ErrTaxIntegrityViolation)
	assert.Equal(t, "tx-1", taxErr.TaxLineID)
	require.NotNil(t, taxErr.Expected)
	require.NotNil(t, taxErr.Actual)
	assert.True(t, taxErr.Expected.Equal(dec("160")))
	assert.True(t, taxErr.Actual.Equal(dec("150")))
}

func TestValidateTaxIntegrity_Tolerance(t *testing.T) {
	line := func(amount string) []domain.TaxLine {
		return []domain.TaxLine{{TaxLineID: "tx-1", SourceID: "L1", TaxRateID: "vat16", TaxableAmount: dec("33.33"), TaxAmount: dec(amount)}}
	}
	// 33.33 * 0.16 = 5.3328, rounds to 5.33
	assert.NoError(t, governance.ValidateTaxIntegrity(governance.TaxInput{TaxLines: line("5.33"), Rates: vatRates()}))
	assert.NoError(t, governance.ValidateTaxIntegrity(governance.TaxInput{TaxLines: line("5.34"), Rates: vatRates()}))
	assert.ErrorIs(t, governance.ValidateTaxIntegrity(governance.TaxInput{TaxLines: line("5.35"), Rates: vatRates()}), apperrors.ErrTaxIntegrityViolation)

	wide := governance.TaxInput{TaxLines: line("5.40"), Rates: vatRates(), Tolerance: dec("0.10")}
	assert.NoError(t, governance.ValidateTaxIntegrity(wide))
}

func TestValidateTaxIntegrity_UnknownRateAndLockedSource(t *testing.T) {
	err := governance.ValidateTaxIntegrity(governance.TaxInput{
		TaxLines: []domain.TaxLine{{TaxLineID: "tx-9", SourceID: "L1", TaxRateID: "gst", TaxableAmount: dec("10"), TaxAmount: dec("1")}},
		Rates:    vatRates(),
	})
	var taxErr *apperrors.TaxIntegrityViolationError
	require.ErrorAs(t, err, &taxErr)
	assert.Equal(t, "tx-9", taxErr.TaxLineID)
	assert.Nil(t, taxErr.Expected)

	err = governance.ValidateTaxIntegrity(governance.TaxInput{
		TaxLines:      []domain.TaxLine{{TaxLineID: "tx-2", SourceID: "L1", TaxRateID: "vat16", TaxableAmount: dec("100"), TaxAmount: dec("16")}},
		Rates:         vatRates(),
		LockedSources: map[string]struct{}{"L1": {}},
	})
	require.ErrorAs(t, err, &taxErr)
	assert.Equal(t, "tx-2", taxErr.TaxLineID)
	assert.Contains(t, taxErr.Reason, "locked")
}

func TestValidateTaxIntegrity_Reconciliation(t *testing.T) {
	taxLines := []domain.TaxLine{
		{TaxLineID: "tx-1", SourceType: domain.TaxSourceLine, SourceID: "L1", TaxRateID: "vat16", TaxableAmount: dec("600"), TaxAmount: dec("96")},
		{TaxLineID: "tx-2", SourceType: domain.TaxSourceLine, SourceID: "L1", TaxRateID: "vat16", TaxableAmount: dec("400"), TaxAmount: dec("64")},
		{TaxLineID: "tx-3", SourceType: domain.TaxSourceLine, SourceID: "L1", TaxRateID: "wht2", TaxableAmount: dec("1000"), TaxAmount: dec("20")},
		{TaxLineID: "tx-4", SourceType: domain.TaxSourceDocument, SourceID: "inv-1", TaxRateID: "vat16", TaxableAmount: dec("50"), TaxAmount: dec("8")},
	}

	ok := governance.TaxInput{
		DocumentID:    "inv-1",
		TaxLines:      taxLines,
		Rates:         vatRates(),
		SourceAmounts: map[string]decimal.Decimal{"L1": dec("1000"), "inv-1": dec("50")},
	}
	assert.NoError(t, governance.ValidateTaxIntegrity(ok))

	short := ok
	short.SourceAmounts = map[string]decimal.Decimal{"L1": dec("1100"), "inv-1": dec("50")}
	var taxErr *apperrors.TaxIntegrityViolationError
	require.ErrorAs(t, governance.ValidateTaxIntegrity(short), &taxErr)
	assert.Equal(t, "tx-1", taxErr.TaxLineID)
	assert.True(t, taxErr.Expected.Equal(dec("1100")))
	assert.True(t, taxErr.Actual.Equal(dec("1000")))

	foreign := ok
	foreign.SourceAmounts = map[string]decimal.Decimal{"L1": dec("1000")}
	require.ErrorAs(t, governance.ValidateTaxIntegrity(foreign), &taxErr)
	assert.Equal(t, "tx-4", taxErr.TaxLineID)
}
