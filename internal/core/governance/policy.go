package governance

import "github.com/SscSPs/backoffice_governance/internal/core/domain"

// DocumentPolicy parameterizes the shared lifecycle for one document type.
// Permissions lists, per action, the codes that authorize it: one code is
// required outright, several are an any-of. The first code of each list is the
// one recorded as exercised by the actor stamped for that action. REJECT and
// RETURN end or undo a review and record nothing.
type DocumentPolicy struct {
	Type                      domain.DocumentType
	Permissions               map[domain.Action][]string
	AffectsLedger             bool
	RequiresReview            bool
	RequireOpenPeriodOnCreate bool
}

// PermissionsFor returns the codes authorizing action.
func (p DocumentPolicy) PermissionsFor(action domain.Action) []string {
	return p.Permissions[action]
}

func modulePermissions(prefix string) map[domain.Action][]string {
	return map[domain.Action][]string{
		domain.ActionCreate:  {prefix + "_CREATE"},
		domain.ActionSubmit:  {prefix + "_SUBMIT"},
		domain.ActionReview:  {prefix + "_REVIEW"},
		domain.ActionApprove: {prefix + "_APPROVE"},
		domain.ActionReject:  {prefix + "_REJECT", prefix + "_APPROVE"},
		domain.ActionReturn:  {prefix + "_APPROVE"},
		domain.ActionPost:    {prefix + "_POST"},
		domain.ActionReverse: {prefix + "_REVERSE"},
	}
}

// DefaultPolicies returns the policies of the built-in document types keyed by type.
func DefaultPolicies() map[domain.DocumentType]DocumentPolicy {
	policies := []DocumentPolicy{
		{Type: domain.DocumentJournalEntry, Permissions: modulePermissions("GL_JOURNAL"), AffectsLedger: true},
		{Type: domain.DocumentCustomerInvoice, Permissions: modulePermissions("AR_INVOICE"), AffectsLedger: true},
		{Type: domain.DocumentSupplierInvoice, Permissions: modulePermissions("AP_INVOICE"), AffectsLedger: true},
		{Type: domain.DocumentFixedAsset, Permissions: modulePermissions("FA_ASSET"), AffectsLedger: true, RequiresReview: true},
		{Type: domain.DocumentPayment, Permissions: modulePermissions("TR_PAYMENT"), AffectsLedger: true, RequireOpenPeriodOnCreate: true},
	}
	out := make(map[domain.DocumentType]DocumentPolicy, len(policies))
	for _, p := range policies {
		out[p.Type] = p
	}
	return out
}

var trailActions = []struct {
	field  domain.TrailField
	action domain.Action
}{
	{domain.TrailCreatedBy, domain.ActionCreate},
	{domain.TrailSubmittedBy, domain.ActionSubmit},
	{domain.TrailReviewedBy, domain.ActionReview},
	{domain.TrailApprovedBy, domain.ActionApprove},
	{domain.TrailPostedBy, domain.ActionPost},
	{domain.TrailRejectedBy, domain.ActionReject},
	{domain.TrailReturnedBy, domain.ActionReturn},
	{domain.TrailReversalInitiatedBy, domain.ActionReverse},
}

// exercisedPermissions merges the document's explicit permission log with the
// permissions implied by its actor trail.
func exercisedPermissions(policy DocumentPolicy, doc domain.Document) []domain.ExercisedPermission {
	out := make([]domain.ExercisedPermission, 0, len(doc.ExercisedPermissions)+len(trailActions))
	out = append(out, doc.ExercisedPermissions...)
	for _, ta := range trailActions {
		userID := doc.ActorTrail.Get(ta.field)
		codes := policy.Permissions[ta.action]
		if userID == "" || len(codes) == 0 || !recordsExercise(ta.action) {
			continue
		}
		out = append(out, domain.ExercisedPermission{Permission: codes[0], UserID: userID})
	}
	return out
}

// recordsExercise reports whether completing action counts as exercising its
// authorizing permission for pair rules.
func recordsExercise(action domain.Action) bool {
	return action != domain.ActionReject && action != domain.ActionReturn
}

// attemptedPermissions are the authorizing codes for action the actor actually holds.
func attemptedPermissions(actor domain.Actor, codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if actor.Permissions.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
