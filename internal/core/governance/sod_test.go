package governance_test

import (
	"testing"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateSoD_Ownership(t *testing.T) {
	trail := domain.ActorTrail{CreatedByID: "alice"}
	strict := domain.DefaultTenantPolicy("t1")
	lenient := strict
	lenient.AllowSelfPosting = true

	testCases := []struct {
		name     string
		action   domain.Action
		policy   domain.TenantPolicy
		allowed  bool
		ruleCode string
	}{
		{name: "self approve", action: domain.ActionApprove, policy: strict, ruleCode: governance.RuleSelfApprove},
		{name: "self post", action: domain.ActionPost, policy: strict, ruleCode: governance.RuleSelfPost},
		{name: "self review", action: domain.ActionReview, policy: strict, ruleCode: governance.RuleSelfReview},
		{name: "create is exempt", action: domain.ActionCreate, policy: strict, allowed: true},
		{name: "submit is exempt", action: domain.ActionSubmit, policy: strict, allowed: true},
		{name: "self approve allowed by tenant", action: domain.ActionApprove, policy: lenient, allowed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := governance.EvaluateSoD(governance.SoDContext{
				Action:      tc.action,
				ActorUserID: "alice",
				Trail:       trail,
			}, tc.policy)
			assert.Equal(t, tc.allowed, d.Allowed)
			assert.Equal(t, tc.ruleCode, d.RuleCode)
			if !tc.allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestEvaluateSoD_ReviewerCompletedChecklist(t *testing.T) {
	d := governance.EvaluateSoD(governance.SoDContext{
		Action:                  domain.ActionReview,
		ActorUserID:             "bob",
		Trail:                   domain.ActorTrail{CreatedByID: "alice"},
		ChecklistCompletedByIDs: []string{"carol", "bob"},
	}, domain.DefaultTenantPolicy("t1"))

	assert.False(t, d.Allowed)
	assert.Equal(t, governance.RuleReviewerCompletedChecklist, d.RuleCode)
}

func TestEvaluateSoD_SeparationUsesProjectedTrail(t *testing.T) {
	policy := domain.DefaultTenantPolicy("t1")
	trail := domain.ActorTrail{CreatedByID: "alice", SubmittedByID: "alice", ApprovedByID: "bob"}

	d := governance.EvaluateSoD(governance.SoDContext{Action: domain.ActionPost, ActorUserID: "bob", Trail: trail}, policy)
	assert.False(t, d.Allowed)
	assert.Equal(t, "SOD_APPROVER_POSTER", d.RuleCode)

	d = governance.EvaluateSoD(governance.SoDContext{Action: domain.ActionPost, ActorUserID: "carol", Trail: trail}, policy)
	assert.True(t, d.Allowed)
}

func TestRequireSoDSeparation(t *testing.T) {
	rule := domain.SeparationRule{RuleCode: "SOD_CREATOR_APPROVER", FieldA: domain.TrailCreatedBy, FieldB: domain.TrailApprovedBy}

	assert.True(t, governance.RequireSoDSeparation(rule, domain.ActorTrail{CreatedByID: "a"}).Allowed)
	assert.True(t, governance.RequireSoDSeparation(rule, domain.ActorTrail{CreatedByID: "a", ApprovedByID: "b"}).Allowed)
	assert.True(t, governance.RequireSoDSeparation(rule, domain.ActorTrail{}).Allowed)

	d := governance.RequireSoDSeparation(rule, domain.ActorTrail{CreatedByID: "a", ApprovedByID: "a"})
	assert.False(t, d.Allowed)
	assert.Equal(t, "SOD_CREATOR_APPROVER", d.RuleCode)
}

func TestDetectSoDConflictFromRules_PermissionPairBothDirections(t *testing.T) {
	rules := []domain.SoDRule{{RuleCode: "SOD_CREATE_APPROVE", PermissionA: "AR_INVOICE_CREATE", PermissionB: "AR_INVOICE_APPROVE"}}
	holdsBoth := domain.NewPermissionSet("AR_INVOICE_CREATE", "AR_INVOICE_APPROVE")
	holdsOne := domain.NewPermissionSet("AR_INVOICE_APPROVE")

	testCases := []struct {
		name      string
		attempted string
		held      domain.PermissionSet
		exercised []domain.ExercisedPermission
		allowed   bool
	}{
		{
			name:      "A attempted after another actor exercised B, actor holds B",
			attempted: "AR_INVOICE_CREATE",
			held:      holdsBoth,
			exercised: []domain.ExercisedPermission{{Permission: "AR_INVOICE_APPROVE", UserID: "other"}},
		},
		{
			name:      "B attempted after another actor exercised A, actor holds A",
			attempted: "AR_INVOICE_APPROVE",
			held:      holdsBoth,
			exercised: []domain.ExercisedPermission{{Permission: "AR_INVOICE_CREATE", UserID: "other"}},
		},
		{
			name:      "B attempted after the actor exercised A",
			attempted: "AR_INVOICE_APPROVE",
			held:      holdsOne,
			exercised: []domain.ExercisedPermission{{Permission: "AR_INVOICE_CREATE", UserID: "me"}},
		},
		{
			name:      "paired permission exercised by someone else and not held",
			attempted: "AR_INVOICE_APPROVE",
			held:      holdsOne,
			exercised: []domain.ExercisedPermission{{Permission: "AR_INVOICE_CREATE", UserID: "other"}},
			allowed:   true,
		},
		{
			name:      "unrelated permission",
			attempted: "AR_INVOICE_POST",
			held:      holdsBoth,
			exercised: []domain.ExercisedPermission{{Permission: "AR_INVOICE_CREATE", UserID: "me"}},
			allowed:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := governance.DetectSoDConflictFromRules(rules, []string{tc.attempted}, "me", tc.held, tc.exercised)
			assert.Equal(t, tc.allowed, d.Allowed)
			if !tc.allowed {
				assert.Equal(t, "SOD_CREATE_APPROVE", d.RuleCode)
				assert.Contains(t, d.Reason, "AR_INVOICE_CREATE")
				assert.Contains(t, d.Reason, "AR_INVOICE_APPROVE")
			}
		})
	}
}
