package governance

import (
	"fmt"
	"slices"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// Ownership rule codes.
const (
	RuleSelfApprove                = "SOD_SELF_APPROVE"
	RuleSelfPost                   = "SOD_SELF_POST"
	RuleSelfReview                 = "SOD_SELF_REVIEW"
	RuleReviewerCompletedChecklist = "SOD_REVIEWER_COMPLETED_CHECKLIST"
)

// SoDContext is everything the SoD engine looks at for one attempted action.
type SoDContext struct {
	Action      domain.Action
	ActorUserID string
	// ActorPermissions is the attempting actor's current permission snapshot.
	ActorPermissions domain.PermissionSet
	// AttemptedPermissions are the codes the actor exercises by performing Action.
	AttemptedPermissions    []string
	Trail                   domain.ActorTrail
	ChecklistCompletedByIDs []string
	// Exercised is the document's permission log, trail-derived entries included.
	Exercised []domain.ExercisedPermission
}

// SoDDecision is the outcome of EvaluateSoD. RuleCode and Reason are empty when allowed.
type SoDDecision struct {
	Allowed  bool   `json:"allowed"`
	Reason   string `json:"reason,omitempty"`
	RuleCode string `json:"ruleCode,omitempty"`
}

func allow() SoDDecision { return SoDDecision{Allowed: true} }

func deny(ruleCode, reason string) SoDDecision {
	return SoDDecision{Allowed: false, RuleCode: ruleCode, Reason: reason}
}

// EvaluateSoD runs the ownership, separation and permission-pair rules in that
// order and returns the first violation found.
func EvaluateSoD(ctx SoDContext, policy domain.TenantPolicy) SoDDecision {
	if d := checkOwnership(ctx, policy); !d.Allowed {
		return d
	}

	field, ok := domain.TrailFieldFor(ctx.Action)
	if ok {
		projected := ctx.Trail.With(field, ctx.ActorUserID)
		for _, rule := range policy.SeparationRules {
			if rule.FieldA != field && rule.FieldB != field {
				continue
			}
			if d := RequireSoDSeparation(rule, projected); !d.Allowed {
				return d
			}
		}
	}

	return DetectSoDConflictFromRules(policy.SoDRules, ctx.AttemptedPermissions, ctx.ActorUserID, ctx.ActorPermissions, ctx.Exercised)
}

func checkOwnership(ctx SoDContext, policy domain.TenantPolicy) SoDDecision {
	var rule string
	switch ctx.Action {
	case domain.ActionApprove:
		rule = RuleSelfApprove
	case domain.ActionPost:
		rule = RuleSelfPost
	case domain.ActionReview:
		rule = RuleSelfReview
	default:
		return allow()
	}

	if !policy.AllowSelfPosting && ctx.Trail.CreatedByID != "" && ctx.Trail.CreatedByID == ctx.ActorUserID {
		return deny(rule, fmt.Sprintf("user %s created this document and cannot %s it", ctx.ActorUserID, actionVerb(ctx.Action)))
	}

	if ctx.Action == domain.ActionReview && slices.Contains(ctx.ChecklistCompletedByIDs, ctx.ActorUserID) {
		return deny(RuleReviewerCompletedChecklist,
			fmt.Sprintf("user %s completed checklist items on this document and cannot review it", ctx.ActorUserID))
	}
	return allow()
}

// RequireSoDSeparation denies when both trail fields named by the rule hold the same actor.
func RequireSoDSeparation(rule domain.SeparationRule, trail domain.ActorTrail) SoDDecision {
	a := trail.Get(rule.FieldA)
	b := trail.Get(rule.FieldB)
	if a == "" || b == "" || a != b {
		return allow()
	}
	return deny(rule.RuleCode, fmt.Sprintf("%s and %s must be different users (both %s)", rule.FieldA, rule.FieldB, a))
}

// DetectSoDConflictFromRules flags an attempted permission P when a rule pairs it
// with Q and Q was already exercised on the document either by the actor, or by
// someone else while the actor also holds Q.
func DetectSoDConflictFromRules(rules []domain.SoDRule, attempted []string, actorID string, held domain.PermissionSet, exercised []domain.ExercisedPermission) SoDDecision {
	for _, p := range attempted {
		for _, rule := range rules {
			q, ok := rule.Pairs(p)
			if !ok {
				continue
			}
			for _, e := range exercised {
				if e.Permission != q || e.UserID == "" {
					continue
				}
				if e.UserID == actorID {
					return deny(rule.RuleCode, fmt.Sprintf("user %s already exercised %s on this document and cannot exercise %s", actorID, q, p))
				}
				if held.Has(q) {
					return deny(rule.RuleCode, fmt.Sprintf("user %s holds %s, already exercised on this document by %s, and cannot exercise %s", actorID, q, e.UserID, p))
				}
			}
		}
	}
	return allow()
}

func actionVerb(a domain.Action) string {
	switch a {
	case domain.ActionApprove:
		return "approve"
	case domain.ActionPost:
		return "post"
	case domain.ActionReview:
		return "review"
	}
	return string(a)
}
