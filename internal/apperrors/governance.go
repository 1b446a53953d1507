package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind sentinels for governance decisions. Structured errors below match them via errors.Is.
var (
	ErrAccessDenied          = errors.New("access denied")
	ErrSoDViolation          = errors.New("segregation of duties violation")
	ErrPeriodNotOpen         = errors.New("accounting period is not open")
	ErrUnbalancedEntry       = errors.New("journal entry is unbalanced")
	ErrMissingDimension      = errors.New("required dimension missing")
	ErrTaxIntegrityViolation = errors.New("tax integrity violation")
	ErrInvalidTransition     = errors.New("invalid lifecycle transition")
	ErrAccountNotPostable    = errors.New("account does not accept postings")
)

// Error codes surfaced to API clients and audit records.
const (
	CodeAccessDenied          = "ACCESS_DENIED"
	CodeSoDViolation          = "SOD_VIOLATION"
	CodePeriodNotOpen         = "PERIOD_NOT_OPEN"
	CodeUnbalancedEntry       = "UNBALANCED_ENTRY"
	CodeMissingDimension      = "MISSING_DIMENSION"
	CodeTaxIntegrityViolation = "TAX_INTEGRITY_VIOLATION"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeAccountNotPostable    = "ACCOUNT_NOT_POSTABLE"
)

// CodedError is implemented by every structured governance error.
type CodedError interface {
	error
	Code() string
	Details() map[string]any
}

// AccessDeniedError reports a missing permission. Exactly one of MissingPermission
// or MissingAnyOf is populated.
type AccessDeniedError struct {
	ActorID           string
	MissingPermission string
	MissingAnyOf      []string
}

func (e *AccessDeniedError) Error() string {
	if e.MissingPermission != "" {
		return fmt.Sprintf("access denied: missing permission %s", e.MissingPermission)
	}
	return fmt.Sprintf("access denied: requires any of [%s]", strings.Join(e.MissingAnyOf, ", "))
}

func (e *AccessDeniedError) Is(target error) bool { return target == ErrAccessDenied }
func (e *AccessDeniedError) Code() string         { return CodeAccessDenied }

func (e *AccessDeniedError) Details() map[string]any {
	d := map[string]any{"actorId": e.ActorID}
	if e.MissingPermission != "" {
		d["missingPermission"] = e.MissingPermission
	}
	if len(e.MissingAnyOf) > 0 {
		d["missingAnyOf"] = e.MissingAnyOf
	}
	return d
}

// SoDViolationError reports an ownership or permission-pair conflict.
type SoDViolationError struct {
	RuleCode string
	Reason   string
	ActorID  string
	Action   string
}

func (e *SoDViolationError) Error() string {
	return fmt.Sprintf("segregation of duties violation [%s]: %s", e.RuleCode, e.Reason)
}

func (e *SoDViolationError) Is(target error) bool { return target == ErrSoDViolation }
func (e *SoDViolationError) Code() string         { return CodeSoDViolation }

func (e *SoDViolationError) Details() map[string]any {
	return map[string]any{"ruleCode": e.RuleCode, "reason": e.Reason, "actorId": e.ActorID, "action": e.Action}
}

// PeriodNotOpenError reports a posting or reversal blocked by period control.
type PeriodNotOpenError struct {
	Operation     string
	Status        string
	PeriodName    string
	DocumentLabel string
}

func (e *PeriodNotOpenError) Error() string {
	subject := "document"
	if e.DocumentLabel != "" {
		subject = e.DocumentLabel
	}
	period := "the accounting period"
	if e.PeriodName != "" {
		period = fmt.Sprintf("period %s", e.PeriodName)
	}
	status := e.Status
	if status == "" {
		status = "UNKNOWN"
	}
	return fmt.Sprintf("cannot %s %s: %s is %s", e.Operation, subject, period, status)
}

func (e *PeriodNotOpenError) Is(target error) bool { return target == ErrPeriodNotOpen }
func (e *PeriodNotOpenError) Code() string         { return CodePeriodNotOpen }

func (e *PeriodNotOpenError) Details() map[string]any {
	return map[string]any{"operation": e.Operation, "status": e.Status, "periodName": e.PeriodName}
}

// UnbalancedEntryError carries the rounded totals and their difference (debit minus credit).
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Delta       decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is unbalanced: debits %s, credits %s, delta %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2), e.Delta.StringFixed(2))
}

func (e *UnbalancedEntryError) Is(target error) bool { return target == ErrUnbalancedEntry }
func (e *UnbalancedEntryError) Code() string         { return CodeUnbalancedEntry }

func (e *UnbalancedEntryError) Details() map[string]any {
	return map[string]any{
		"totalDebit":  e.TotalDebit.StringFixed(2),
		"totalCredit": e.TotalCredit.StringFixed(2),
		"delta":       e.Delta.StringFixed(2),
	}
}

// MissingDimensionError names the offending line (zero-based) and the dimension its account requires.
type MissingDimensionError struct {
	LineIndex int
	AccountID string
	Dimension string
}

func (e *MissingDimensionError) Error() string {
	return fmt.Sprintf("line %d: account %s requires dimension %s", e.LineIndex, e.AccountID, e.Dimension)
}

func (e *MissingDimensionError) Is(target error) bool { return target == ErrMissingDimension }
func (e *MissingDimensionError) Code() string         { return CodeMissingDimension }

func (e *MissingDimensionError) Details() map[string]any {
	return map[string]any{"lineIndex": e.LineIndex, "accountId": e.AccountID, "dimension": e.Dimension}
}

// AccountNotPostableError reports a line booked to an account that is frozen,
// not posting-allowed, or unknown to the catalog snapshot.
type AccountNotPostableError struct {
	LineIndex int
	AccountID string
	Reason    string
}

func (e *AccountNotPostableError) Error() string {
	return fmt.Sprintf("line %d: account %s %s", e.LineIndex, e.AccountID, e.Reason)
}

func (e *AccountNotPostableError) Is(target error) bool {
	return target == ErrAccountNotPostable || target == ErrValidation
}
func (e *AccountNotPostableError) Code() string { return CodeAccountNotPostable }

func (e *AccountNotPostableError) Details() map[string]any {
	return map[string]any{"lineIndex": e.LineIndex, "accountId": e.AccountID, "reason": e.Reason}
}

// TaxIntegrityViolationError names the offending tax line. Expected and Actual are
// populated for amount mismatches.
type TaxIntegrityViolationError struct {
	TaxLineID string
	Reason    string
	Expected  *decimal.Decimal
	Actual    *decimal.Decimal
}

func (e *TaxIntegrityViolationError) Error() string {
	if e.Expected != nil && e.Actual != nil {
		return fmt.Sprintf("tax line %s: %s (expected %s, got %s)",
			e.TaxLineID, e.Reason, e.Expected.StringFixed(2), e.Actual.StringFixed(2))
	}
	return fmt.Sprintf("tax line %s: %s", e.TaxLineID, e.Reason)
}

func (e *TaxIntegrityViolationError) Is(target error) bool { return target == ErrTaxIntegrityViolation }
func (e *TaxIntegrityViolationError) Code() string         { return CodeTaxIntegrityViolation }

func (e *TaxIntegrityViolationError) Details() map[string]any {
	d := map[string]any{"taxLineId": e.TaxLineID, "reason": e.Reason}
	if e.Expected != nil {
		d["expected"] = e.Expected.StringFixed(2)
	}
	if e.Actual != nil {
		d["actual"] = e.Actual.StringFixed(2)
	}
	return d
}

// InvalidTransitionError reports an illegal lifecycle move.
type InvalidTransitionError struct {
	DocumentID string
	From       string
	Action     string
	Reason     string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s document %s in status %s", e.Action, e.DocumentID, e.From)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
func (e *InvalidTransitionError) Code() string         { return CodeInvalidTransition }

func (e *InvalidTransitionError) Details() map[string]any {
	return map[string]any{"documentId": e.DocumentID, "from": e.From, "action": e.Action, "reason": e.Reason}
}

// AsCoded extracts the structured governance error from err, if any.
func AsCoded(err error) (CodedError, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}
