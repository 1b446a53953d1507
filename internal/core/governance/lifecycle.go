package governance

import (
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LifecycleGuard decides and applies one lifecycle transition of a document.
type LifecycleGuard interface {
	Transition(req TransitionRequest) (*TransitionResult, error)
}

// TransitionRequest carries the snapshots one transition is evaluated against.
type TransitionRequest struct {
	Document domain.Document
	Action   domain.Action
	Actor    domain.Actor
	Policy   domain.TenantPolicy
	// Period is the document's accounting period; nil when it has none.
	Period *domain.AccountingPeriod

	Lines    []domain.JournalLine
	Accounts map[string]domain.Account

	TaxLines      []domain.TaxLine
	TaxRates      map[string]domain.TaxRate
	LockedSources map[string]struct{}
	// TaxableTotal is the document-level taxable base, used by DOCUMENT-sourced tax lines.
	TaxableTotal *decimal.Decimal
}

// TransitionResult is the stamped copy of the document plus everything the
// transition produced. The caller persists it atomically.
type TransitionResult struct {
	Document         domain.Document          `json:"document"`
	PreviousStatus   domain.DocumentStatus    `json:"previousStatus"`
	GeneratedJournal *domain.GeneratedJournal `json:"generatedJournal,omitempty"`
	ReversalDocument *domain.Document         `json:"reversalDocument,omitempty"`
	Balance          *BalanceResult           `json:"balance,omitempty"`
	Decision         SoDDecision              `json:"decision"`
}

// Option configures a Kernel.
type Option func(*Kernel)

// WithClock overrides the time source used for stamps.
func WithClock(now func() time.Time) Option {
	return func(k *Kernel) { k.now = now }
}

// WithIDGenerator overrides how new document, journal and line ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(k *Kernel) { k.newID = newID }
}

// WithPolicies replaces the policy of each given document type.
func WithPolicies(policies ...DocumentPolicy) Option {
	return func(k *Kernel) {
		for _, p := range policies {
			k.policies[p.Type] = p
		}
	}
}

// Kernel is the single LifecycleGuard shared by every document type. It holds
// no mutable state and is safe for concurrent use.
type Kernel struct {
	policies map[domain.DocumentType]DocumentPolicy
	now      func() time.Time
	newID    func() string
}

var _ LifecycleGuard = (*Kernel)(nil)

// NewKernel creates a Kernel with DefaultPolicies, the UTC wall clock and uuid ids.
func NewKernel(opts ...Option) *Kernel {
	k := &Kernel{
		policies: DefaultPolicies(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Policy returns the policy for a document type.
func (k *Kernel) Policy(t domain.DocumentType) (DocumentPolicy, bool) {
	p, ok := k.policies[t]
	return p, ok
}

// Transition runs the legal-move check, permission evaluation, SoD, period guard
// and ledger/tax validation in that order, then stamps a copy of the document.
// The request's document is never modified.
func (k *Kernel) Transition(req TransitionRequest) (*TransitionResult, error) {
	doc := req.Document
	if !req.Action.IsValid() {
		return nil, fmt.Errorf("%w: unknown action %q", apperrors.ErrValidation, req.Action)
	}
	policy, ok := k.policies[doc.Type]
	if !ok {
		return nil, fmt.Errorf("%w: no lifecycle policy for document type %q", apperrors.ErrValidation, doc.Type)
	}
	if req.Actor.TenantID != doc.TenantID {
		return nil, fmt.Errorf("%w: actor %s does not belong to tenant %s", apperrors.ErrForbidden, req.Actor.UserID, doc.TenantID)
	}

	to, err := legalMove(policy, doc, req.Action)
	if err != nil {
		return nil, err
	}

	codes := policy.PermissionsFor(req.Action)
	if err := requireActionPermission(req.Actor, codes); err != nil {
		return nil, err
	}

	decision := EvaluateSoD(SoDContext{
		Action:                  req.Action,
		ActorUserID:             req.Actor.UserID,
		ActorPermissions:        req.Actor.Permissions,
		AttemptedPermissions:    attemptedPermissions(req.Actor, codes),
		Trail:                   doc.ActorTrail,
		ChecklistCompletedByIDs: doc.ChecklistCompletedByIDs,
		Exercised:               exercisedPermissions(policy, doc),
	}, req.Policy)
	if !decision.Allowed {
		return nil, &apperrors.SoDViolationError{
			RuleCode: decision.RuleCode,
			Reason:   decision.Reason,
			ActorID:  req.Actor.UserID,
			Action:   string(req.Action),
		}
	}

	if err := checkPeriod(policy, doc, req); err != nil {
		return nil, err
	}

	var balance *BalanceResult
	if policy.AffectsLedger && (req.Action == domain.ActionApprove || req.Action == domain.ActionPost) {
		balance, err = ValidateLedger(LedgerInput{Lines: req.Lines, Accounts: req.Accounts})
		if err != nil {
			return nil, err
		}
		if err := ValidateTaxIntegrity(taxInput(doc, req)); err != nil {
			return nil, err
		}
	}

	result := &TransitionResult{
		PreviousStatus: doc.Status,
		Balance:        balance,
		Decision:       decision,
	}
	now := k.now()
	next := doc.Clone()
	next.Status = to
	next.Version = doc.Version + 1
	next.LastUpdatedAt = now
	next.LastUpdatedBy = req.Actor.UserID
	if recordsExercise(req.Action) {
		for _, c := range attemptedPermissions(req.Actor, codes) {
			next.ExercisedPermissions = append(next.ExercisedPermissions, domain.ExercisedPermission{Permission: c, UserID: req.Actor.UserID})
		}
	}
	stamp(&next, req.Action, req.Actor.UserID, now)

	switch req.Action {
	case domain.ActionPost:
		if policy.AffectsLedger {
			result.GeneratedJournal = k.journalFor(next, req.Lines, nil, now)
		}
	case domain.ActionReverse:
		reversal := k.reversalOf(next, req.Actor.UserID, now)
		next.ReversedByID = reversal.DocumentID
		if policy.AffectsLedger {
			mirrored := make([]domain.JournalLine, len(req.Lines))
			for i, l := range req.Lines {
				mirrored[i] = l.Mirrored(k.newID())
			}
			result.GeneratedJournal = k.journalFor(reversal, mirrored, &doc, now)
		}
		result.ReversalDocument = &reversal
	}

	result.Document = next
	return result, nil
}

// CheckCreate runs the gates that apply before a document exists: the create
// permission and, when the document type opts in, the period guard.
func (k *Kernel) CheckCreate(docType domain.DocumentType, actor domain.Actor, period *domain.AccountingPeriod) error {
	policy, ok := k.policies[docType]
	if !ok {
		return fmt.Errorf("%w: no lifecycle policy for document type %q", apperrors.ErrValidation, docType)
	}
	if err := requireActionPermission(actor, policy.PermissionsFor(domain.ActionCreate)); err != nil {
		return err
	}
	status, pctx := periodStatusOf(period)
	pctx.DocumentLabel = string(docType)
	return PeriodGuard{RequireOpenOnCreate: policy.RequireOpenPeriodOnCreate}.AssertCanCreate(status, pctx)
}

func legalMove(policy DocumentPolicy, doc domain.Document, action domain.Action) (domain.DocumentStatus, error) {
	invalid := func(reason string) error {
		from := string(doc.Status)
		if from == "" {
			from = "NEW"
		}
		return &apperrors.InvalidTransitionError{DocumentID: doc.DocumentID, From: from, Action: string(action), Reason: reason}
	}

	if action == domain.ActionCreate {
		if doc.Status != "" {
			return "", invalid("document already exists")
		}
		return domain.StatusDraft, nil
	}
	if doc.Status == domain.StatusReversed && action == domain.ActionReverse {
		return "", invalid("document is already reversed")
	}
	if doc.Status.IsTerminal() {
		return "", invalid("document is in a terminal state")
	}

	switch action {
	case domain.ActionSubmit:
		if doc.Status == domain.StatusDraft {
			return domain.StatusSubmitted, nil
		}
	case domain.ActionReview:
		if doc.Status == domain.StatusSubmitted {
			if doc.ReviewedByID != "" {
				return "", invalid("document is already reviewed")
			}
			return domain.StatusSubmitted, nil
		}
	case domain.ActionApprove:
		if doc.Status == domain.StatusSubmitted {
			if policy.RequiresReview && doc.ReviewedByID == "" {
				return "", invalid("document must be reviewed before approval")
			}
			return domain.StatusApproved, nil
		}
	case domain.ActionReject:
		if doc.Status == domain.StatusSubmitted || doc.Status == domain.StatusApproved {
			return domain.StatusRejected, nil
		}
	case domain.ActionReturn:
		if doc.Status == domain.StatusApproved {
			return domain.StatusDraft, nil
		}
	case domain.ActionPost:
		if doc.Status == domain.StatusPosted {
			return "", invalid("document is already posted")
		}
		if doc.Status == domain.StatusApproved {
			return domain.StatusPosted, nil
		}
	case domain.ActionReverse:
		if doc.Status == domain.StatusPosted {
			if doc.IsReversal() {
				return "", invalid("a reversal cannot itself be reversed")
			}
			if doc.ReversedByID != "" {
				return "", invalid("document is already reversed")
			}
			return domain.StatusReversed, nil
		}
	}
	return "", invalid("")
}

func checkPeriod(policy DocumentPolicy, doc domain.Document, req TransitionRequest) error {
	status, pctx := periodStatusOf(req.Period)
	pctx.DocumentLabel = doc.Label()
	guard := PeriodGuard{RequireOpenOnCreate: policy.RequireOpenPeriodOnCreate}

	switch req.Action {
	case domain.ActionCreate:
		return guard.AssertCanCreate(status, pctx)
	case domain.ActionPost:
		return guard.AssertCanPost(status, pctx)
	case domain.ActionReverse:
		return guard.AssertCanReverse(status, pctx)
	}
	return nil
}

func taxInput(doc domain.Document, req TransitionRequest) TaxInput {
	in := TaxInput{
		DocumentID:    doc.DocumentID,
		TaxLines:      req.TaxLines,
		Rates:         req.TaxRates,
		Tolerance:     req.Policy.TaxTolerance,
		LockedSources: req.LockedSources,
	}
	if len(req.TaxLines) > 0 {
		in.SourceAmounts = SourceAmountsFor(doc.DocumentID, req.Lines, req.TaxableTotal)
	}
	return in
}

func stamp(doc *domain.Document, action domain.Action, userID string, now time.Time) {
	at := now
	switch action {
	case domain.ActionCreate:
		doc.CreatedByID = userID
		doc.CreatedAt = now
	case domain.ActionSubmit:
		doc.SubmittedByID, doc.SubmittedAt = userID, &at
	case domain.ActionReview:
		doc.ReviewedByID, doc.ReviewedAt = userID, &at
	case domain.ActionApprove:
		doc.ApprovedByID, doc.ApprovedAt = userID, &at
	case domain.ActionReject:
		doc.RejectedByID, doc.RejectedAt = userID, &at
	case domain.ActionReturn:
		doc.SubmittedByID, doc.SubmittedAt = "", nil
		doc.ReviewedByID, doc.ReviewedAt = "", nil
		doc.ApprovedByID, doc.ApprovedAt = "", nil
		doc.ReturnedByID, doc.ReturnedAt = userID, &at
	case domain.ActionPost:
		doc.PostedByID, doc.PostedAt = userID, &at
	case domain.ActionReverse:
		doc.ReversalInitiatedByID, doc.ReversedAt = userID, &at
	}
}

func (k *Kernel) reversalOf(original domain.Document, userID string, now time.Time) domain.Document {
	at := now
	r := domain.Document{
		DocumentID:    k.newID(),
		TenantID:      original.TenantID,
		Type:          original.Type,
		Status:        domain.StatusPosted,
		Version:       1,
		PeriodID:      original.PeriodID,
		ReversalOfID:  original.DocumentID,
		CreatedAt:     now,
		PostedAt:      &at,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if original.Number != "" {
		r.Number = original.Number + "-REV"
	}
	r.CreatedByID = userID
	r.PostedByID = userID
	r.ReversalInitiatedByID = userID
	return r
}

func (k *Kernel) journalFor(doc domain.Document, lines []domain.JournalLine, reversalOf *domain.Document, now time.Time) *domain.GeneratedJournal {
	total := decimal.Zero
	copied := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		copied[i] = l
		total = total.Add(l.Debit)
	}
	j := &domain.GeneratedJournal{
		JournalID:        k.newID(),
		TenantID:         doc.TenantID,
		SourceDocumentID: doc.DocumentID,
		PeriodID:         doc.PeriodID,
		PostedAt:         now,
		PostedByID:       doc.PostedByID,
		Lines:            copied,
		TotalAmount:      RoundMoney(total),
	}
	if reversalOf != nil {
		j.ReversalOfID = reversalOf.DocumentID
	}
	return j
}
