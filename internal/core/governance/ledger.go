package governance

import (
	"fmt"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the precision every monetary comparison rounds to.
const moneyPlaces = 2

// LedgerInput is a candidate posting plus the catalog entries of the accounts it touches.
type LedgerInput struct {
	Lines    []domain.JournalLine
	Accounts map[string]domain.Account
}

// BalanceResult reports the rounded totals of a balanced posting.
type BalanceResult struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Delta       decimal.Decimal `json:"delta"`
	LineCount   int             `json:"lineCount"`
}

// RoundMoney rounds to two places, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// ValidateLedger checks line shape, account postability, dimensional completeness
// and finally the double-entry balance. The first failure is returned.
func ValidateLedger(input LedgerInput) (*BalanceResult, error) {
	if len(input.Lines) < 2 {
		return nil, apperrors.ErrJournalMinEntries
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, line := range input.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i)
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			return nil, fmt.Errorf("%w: line %d has both debit and credit set", apperrors.ErrValidation, i)
		}

		account, ok := input.Accounts[line.AccountID]
		if !ok {
			return nil, &apperrors.AccountNotPostableError{LineIndex: i, AccountID: line.AccountID, Reason: "does not exist"}
		}
		if !account.IsPostingAllowed {
			return nil, &apperrors.AccountNotPostableError{LineIndex: i, AccountID: line.AccountID, Reason: "does not allow posting"}
		}
		if account.IsFrozen {
			return nil, &apperrors.AccountNotPostableError{LineIndex: i, AccountID: line.AccountID, Reason: "is frozen"}
		}

		for _, dim := range account.RequiredDimensions() {
			if line.DimensionValue(dim) == "" {
				return nil, &apperrors.MissingDimensionError{LineIndex: i, AccountID: line.AccountID, Dimension: string(dim)}
			}
		}

		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	totalDebit = RoundMoney(totalDebit)
	totalCredit = RoundMoney(totalCredit)
	delta := totalDebit.Sub(totalCredit)

	if !delta.IsZero() {
		return nil, &apperrors.UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit, Delta: delta}
	}

	return &BalanceResult{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Delta:       delta,
		LineCount:   len(input.Lines),
	}, nil
}
