package governance_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodGuard_PostAndReverseRequireOpen(t *testing.T) {
	guard := governance.PeriodGuard{}
	pctx := governance.PeriodContext{PeriodName: "2026-03", DocumentLabel: "CUSTOMER_INVOICE INV-7"}

	statuses := []domain.PeriodStatus{domain.PeriodOpen, domain.PeriodClosed, domain.PeriodLocked, "", "open"}
	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			postErr := guard.AssertCanPost(status, pctx)
			reverseErr := guard.AssertCanReverse(status, pctx)
			if status == domain.PeriodOpen {
				assert.NoError(t, postErr)
				assert.NoError(t, reverseErr)
				return
			}
			assert.True(t, errors.Is(postErr, apperrors.ErrPeriodNotOpen))
			assert.True(t, errors.Is(reverseErr, apperrors.ErrPeriodNotOpen))
		})
	}
}

func TestPeriodGuard_ErrorMessage(t *testing.T) {
	err := governance.PeriodGuard{}.AssertCanPost(domain.PeriodClosed, governance.PeriodContext{
		PeriodName:    "2026-03",
		DocumentLabel: "CUSTOMER_INVOICE INV-7",
	})

	var pErr *apperrors.PeriodNotOpenError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "post", pErr.Operation)
	assert.Equal(t, "cannot post CUSTOMER_INVOICE INV-7: period 2026-03 is CLOSED", err.Error())
}

func TestPeriodGuard_Create(t *testing.T) {
	assert.NoError(t, governance.PeriodGuard{}.AssertCanCreate(domain.PeriodClosed, governance.PeriodContext{}))

	gated := governance.PeriodGuard{RequireOpenOnCreate: true}
	assert.NoError(t, gated.AssertCanCreate(domain.PeriodOpen, governance.PeriodContext{}))
	assert.ErrorIs(t, gated.AssertCanCreate(domain.PeriodLocked, governance.PeriodContext{}), apperrors.ErrPeriodNotOpen)
}
