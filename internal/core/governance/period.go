package governance

import (
	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// PeriodContext only feeds error messages.
type PeriodContext struct {
	PeriodName    string
	DocumentLabel string
}

// PeriodGuard decides whether a document may be created, posted or reversed
// given the status of its accounting period.
type PeriodGuard struct {
	// RequireOpenOnCreate makes creation subject to the same OPEN predicate as posting.
	RequireOpenOnCreate bool
}

// AssertCanCreate is a no-op unless the guard was configured to gate creation.
func (g PeriodGuard) AssertCanCreate(status domain.PeriodStatus, ctx PeriodContext) error {
	if !g.RequireOpenOnCreate {
		return nil
	}
	return assertOpen("create", status, ctx)
}

// AssertCanPost fails unless the period is OPEN.
func (g PeriodGuard) AssertCanPost(status domain.PeriodStatus, ctx PeriodContext) error {
	return assertOpen("post", status, ctx)
}

// AssertCanReverse fails unless the period is OPEN, since the reversal books a new entry.
func (g PeriodGuard) AssertCanReverse(status domain.PeriodStatus, ctx PeriodContext) error {
	return assertOpen("reverse", status, ctx)
}

func assertOpen(op string, status domain.PeriodStatus, ctx PeriodContext) error {
	if status.IsOpen() {
		return nil
	}
	return &apperrors.PeriodNotOpenError{
		Operation:     op,
		Status:        string(status),
		PeriodName:    ctx.PeriodName,
		DocumentLabel: ctx.DocumentLabel,
	}
}

// periodStatusOf reports a missing period as UNKNOWN, which never passes.
func periodStatusOf(p *domain.AccountingPeriod) (domain.PeriodStatus, PeriodContext) {
	if p == nil {
		return domain.PeriodUnknown, PeriodContext{}
	}
	return p.Status, PeriodContext{PeriodName: p.Name}
}
