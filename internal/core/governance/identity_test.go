package governance_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, params any) governance.DeterministicID {
	t.Helper()
	id, err := governance.BuildDeterministicID(params)
	require.NoError(t, err)
	return id
}

func TestBuildDeterministicID_KeyOrderIndependent(t *testing.T) {
	a := mustID(t, json.RawMessage(`{"a":1,"b":2}`))
	b := mustID(t, json.RawMessage(`{"b":2,"a":1}`))

	assert.Equal(t, a, b)
	assert.Equal(t, `{"a":1,"b":2}`, a.CanonicalString)
	assert.Len(t, a.Hash, 64)

	parsed, err := uuid.Parse(a.EntityID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestBuildDeterministicID_ValueChangeChangesHash(t *testing.T) {
	base := mustID(t, map[string]any{"report": "trial_balance", "from": "2026-01-01", "to": "2026-03-31"})
	changed := mustID(t, map[string]any{"report": "trial_balance", "from": "2026-01-01", "to": "2026-04-30"})

	assert.NotEqual(t, base.Hash, changed.Hash)
	assert.NotEqual(t, base.EntityID, changed.EntityID)
}

func TestBuildDeterministicID_Canonicalization(t *testing.T) {
	testCases := []struct {
		name string
		in   any
		want string
	}{
		{name: "nested keys sorted", in: json.RawMessage(`{"z":{"y":1,"x":[3,1]},"a":true}`), want: `{"a":true,"z":{"x":[3,1],"y":1}}`},
		{name: "null sentinel", in: map[string]any{"period": nil}, want: `{"period":` + governance.NullSentinel + `}`},
		{name: "numbers normalized", in: json.RawMessage(`{"amount":100.50,"n":1.0,"e":1e2}`), want: `{"amount":100.5,"e":100,"n":1}`},
		{name: "structs use json tags", in: struct {
			Tenant string `json:"tenantId"`
			Limit  int    `json:"limit"`
		}{Tenant: "t1", Limit: 20}, want: `{"limit":20,"tenantId":"t1"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustID(t, tc.in).CanonicalString)
		})
	}
}

func TestBuildDeterministicID_ArrayOrderMatters(t *testing.T) {
	a := mustID(t, []int{1, 2})
	b := mustID(t, []int{2, 1})
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestBuildDeterministicID_NullDiffersFromSentinelString(t *testing.T) {
	a := mustID(t, map[string]any{"k": nil})
	b := mustID(t, map[string]any{"k": governance.NullSentinel})
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestBuildDeterministicID_Unserializable(t *testing.T) {
	_, err := governance.BuildDeterministicID(map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
