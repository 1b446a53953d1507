package governance

import (
	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxInput is the tax snapshot of one document.
type TaxInput struct {
	DocumentID string
	TaxLines   []domain.TaxLine
	Rates      map[string]domain.TaxRate
	// Tolerance is the absolute allowed drift; zero falls back to domain.DefaultTaxTolerance.
	Tolerance decimal.Decimal
	// LockedSources holds source ids a previous integrity pass has locked.
	LockedSources map[string]struct{}
	// SourceAmounts maps line ids (and the document id for document-level tax) to
	// the taxable base on the document. Nil skips reconciliation.
	SourceAmounts map[string]decimal.Decimal
}

// SourceAmountsFor maps each journal line id to the line amount and, when a
// document-level taxable total is known, the document id to that total.
func SourceAmountsFor(documentID string, lines []domain.JournalLine, taxableTotal *decimal.Decimal) map[string]decimal.Decimal {
	amounts := make(map[string]decimal.Decimal, len(lines)+1)
	for _, l := range lines {
		if l.LineID != "" {
			amounts[l.LineID] = l.Amount()
		}
	}
	if taxableTotal != nil && documentID != "" {
		amounts[documentID] = *taxableTotal
	}
	return amounts
}

type sourceKey struct {
	sourceID  string
	taxRateID string
}

// ValidateTaxIntegrity checks every tax line against its rate, the lock set and
// the document's taxable bases. The first offending tax line is reported.
func ValidateTaxIntegrity(input TaxInput) error {
	tolerance := input.Tolerance
	if !tolerance.IsPositive() {
		tolerance = domain.DefaultTaxTolerance
	}

	sums := make(map[sourceKey]decimal.Decimal)
	firstLine := make(map[sourceKey]string)
	order := make([]sourceKey, 0, len(input.TaxLines))

	for _, tl := range input.TaxLines {
		rate, ok := input.Rates[tl.TaxRateID]
		if !ok {
			return &apperrors.TaxIntegrityViolationError{TaxLineID: tl.TaxLineID, Reason: "tax rate " + tl.TaxRateID + " does not exist"}
		}

		expected := RoundMoney(tl.TaxableAmount.Mul(rate.Rate))
		actual := tl.TaxAmount
		if expected.Sub(actual).Abs().GreaterThan(tolerance) {
			return &apperrors.TaxIntegrityViolationError{
				TaxLineID: tl.TaxLineID,
				Reason:    "tax amount does not match taxable amount times rate",
				Expected:  &expected,
				Actual:    &actual,
			}
		}

		if _, locked := input.LockedSources[tl.SourceID]; locked {
			return &apperrors.TaxIntegrityViolationError{TaxLineID: tl.TaxLineID, Reason: "source " + tl.SourceID + " is locked"}
		}

		key := sourceKey{sourceID: tl.SourceID, taxRateID: tl.TaxRateID}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
			firstLine[key] = tl.TaxLineID
			sums[key] = decimal.Zero
		}
		sums[key] = sums[key].Add(tl.TaxableAmount)
	}

	if input.SourceAmounts == nil {
		return nil
	}

	for _, key := range order {
		base, ok := input.SourceAmounts[key.sourceID]
		if !ok {
			return &apperrors.TaxIntegrityViolationError{TaxLineID: firstLine[key], Reason: "source " + key.sourceID + " is not part of document " + input.DocumentID}
		}
		expected := RoundMoney(base)
		actual := RoundMoney(sums[key])
		if !expected.Equal(actual) {
			return &apperrors.TaxIntegrityViolationError{
				TaxLineID: firstLine[key],
				Reason:    "taxable amounts do not reconcile with source " + key.sourceID,
				Expected:  &expected,
				Actual:    &actual,
			}
		}
	}
	return nil
}
