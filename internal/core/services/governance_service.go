package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/google/uuid"
)

// governanceService loads the snapshots a decision needs, runs the kernel and
// persists what a successful transition produced.
type governanceService struct {
	BaseService
	kernel       *governance.Kernel
	actorRepo    portsrepo.ActorReader
	policyRepo   portsrepo.TenantPolicyReader
	documentRepo portsrepo.DocumentRepositoryFacade
	periodRepo   portsrepo.PeriodReader
	catalogRepo  portsrepo.CatalogReader
	audit        portssvc.AuditRecorderSvc
	now          func() time.Time
}

// GovernanceServiceOption is a function that configures a governanceService
type GovernanceServiceOption func(*governanceService)

// WithKernel replaces the default kernel.
func WithKernel(k *governance.Kernel) GovernanceServiceOption {
	return func(s *governanceService) { s.kernel = k }
}

// WithAuditRecorder sets the sink of governance decisions.
func WithAuditRecorder(a portssvc.AuditRecorderSvc) GovernanceServiceOption {
	return func(s *governanceService) { s.audit = a }
}

// WithServiceClock overrides the clock used for audit timestamps.
func WithServiceClock(now func() time.Time) GovernanceServiceOption {
	return func(s *governanceService) { s.now = now }
}

// NewGovernanceService creates a new governance service.
func NewGovernanceService(repos portsrepo.RepositoryProvider, opts ...GovernanceServiceOption) portssvc.GovernanceSvcFacade {
	s := &governanceService{
		kernel:       governance.NewKernel(),
		actorRepo:    repos.ActorRepo,
		policyRepo:   repos.PolicyRepo,
		documentRepo: repos.DocumentRepo,
		periodRepo:   repos.PeriodRepo,
		catalogRepo:  repos.CatalogRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.GovernanceSvcFacade = (*governanceService)(nil)

// TransitionDocument implements portssvc.DocumentLifecycleSvc
func (s *governanceService) TransitionDocument(ctx context.Context, tenantID, userID, documentID string, req dto.TransitionRequest) (*governance.TransitionResult, error) {
	action := domain.Action(req.Action)

	actor, policy, err := s.loadPrincipal(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.FindDocumentByID(ctx, tenantID, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load document", slog.String("document_id", documentID))
		return nil, err
	}
	if req.ExpectedVersion != nil && *req.ExpectedVersion != doc.Version {
		return nil, fmt.Errorf("%w: document %s is at version %d, expected %d",
			apperrors.ErrConcurrencyConflict, documentID, doc.Version, *req.ExpectedVersion)
	}

	kreq := governance.TransitionRequest{
		Document:     *doc,
		Action:       action,
		Actor:        *actor,
		Policy:       *policy,
		TaxableTotal: doc.TaxableTotal,
	}
	if kreq.Period, err = s.loadPeriod(ctx, tenantID, doc.PeriodID); err != nil {
		return nil, err
	}
	if needsPostingSnapshot(action) {
		if err := s.loadPostingSnapshot(ctx, tenantID, doc.DocumentID, &kreq); err != nil {
			return nil, err
		}
	}

	correlationID := s.correlationID(ctx, map[string]any{
		"tenantId":   tenantID,
		"documentId": documentID,
		"action":     string(action),
		"actorId":    userID,
		"version":    doc.Version,
	})

	result, err := s.kernel.Transition(kreq)
	if err != nil {
		s.recordDenial(ctx, correlationID, *doc, action, userID, err)
		return nil, err
	}

	write := portsrepo.TransitionWrite{
		Document:         result.Document,
		ExpectedVersion:  doc.Version,
		ReversalDocument: result.ReversalDocument,
		GeneratedJournal: result.GeneratedJournal,
	}
	if action == domain.ActionPost {
		write.LockTaxSources = taxSourceIDs(kreq.TaxLines)
	}
	if err := s.documentRepo.SaveTransition(ctx, write); err != nil {
		s.LogError(ctx, err, "Failed to save transition",
			slog.String("document_id", documentID),
			slog.String("action", string(action)))
		return nil, err
	}

	s.LogInfo(ctx, "Document transitioned",
		slog.String("document_id", documentID),
		slog.String("action", string(action)),
		slog.String("from", string(result.PreviousStatus)),
		slog.String("to", string(result.Document.Status)))
	s.record(ctx, domain.AuditRecord{
		CorrelationID: correlationID,
		Kind:          domain.AuditLifecycle,
		Outcome:       domain.OutcomeAllowed,
		Action:        action,
		DocumentID:    doc.DocumentID,
		DocumentType:  doc.Type,
		TenantID:      tenantID,
		ActorID:       userID,
		Details: map[string]any{
			"from":    string(result.PreviousStatus),
			"to":      string(result.Document.Status),
			"version": result.Document.Version,
		},
	})
	return result, nil
}

// CheckCreate implements portssvc.DocumentLifecycleSvc
func (s *governanceService) CheckCreate(ctx context.Context, tenantID, userID string, req dto.CreateCheckRequest) error {
	docType := domain.DocumentType(req.DocumentType)
	actor, _, err := s.loadPrincipal(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	period, err := s.loadPeriod(ctx, tenantID, req.PeriodID)
	if err != nil {
		return err
	}

	correlationID := s.correlationID(ctx, map[string]any{
		"tenantId":     tenantID,
		"documentType": string(docType),
		"periodId":     req.PeriodID,
		"action":       string(domain.ActionCreate),
		"actorId":      userID,
	})
	probe := domain.Document{TenantID: tenantID, Type: docType, PeriodID: req.PeriodID}
	if err := s.kernel.CheckCreate(docType, *actor, period); err != nil {
		s.recordDenial(ctx, correlationID, probe, domain.ActionCreate, userID, err)
		return err
	}
	return nil
}

// ValidateLedger implements portssvc.LedgerValidatorSvc
func (s *governanceService) ValidateLedger(ctx context.Context, tenantID string, req dto.ValidateLedgerRequest) (*governance.BalanceResult, error) {
	lines := dto.ToJournalLines(req.Lines)
	accounts, err := s.catalogRepo.FindAccountsByIDs(ctx, tenantID, accountIDs(lines))
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for ledger validation")
		return nil, err
	}

	balance, err := governance.ValidateLedger(governance.LedgerInput{Lines: lines, Accounts: accounts})
	if err != nil {
		s.LogDebug(ctx, "Ledger validation failed", slog.String("error", err.Error()))
		return nil, err
	}
	if len(req.TaxLines) == 0 {
		return balance, nil
	}

	policy, err := s.loadPolicy(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	taxLines := dto.ToTaxLines(req.TaxLines)
	rates, err := s.catalogRepo.FindTaxRatesByIDs(ctx, tenantID, taxRateIDs(taxLines))
	if err != nil {
		s.LogError(ctx, err, "Failed to load tax rates for ledger validation")
		return nil, err
	}
	locked, err := s.documentRepo.FindLockedTaxSources(ctx, tenantID, taxSourceIDs(taxLines))
	if err != nil {
		s.LogError(ctx, err, "Failed to load locked tax sources")
		return nil, err
	}

	if err := governance.ValidateTaxIntegrity(governance.TaxInput{
		DocumentID:    req.DocumentID,
		TaxLines:      taxLines,
		Rates:         rates,
		Tolerance:     policy.TaxTolerance,
		LockedSources: locked,
		SourceAmounts: governance.SourceAmountsFor(req.DocumentID, lines, req.TaxableTotal),
	}); err != nil {
		s.LogDebug(ctx, "Tax integrity validation failed", slog.String("error", err.Error()))
		return nil, err
	}
	return balance, nil
}

func (s *governanceService) loadPrincipal(ctx context.Context, tenantID, userID string) (*domain.Actor, *domain.TenantPolicy, error) {
	actor, err := s.actorRepo.FindActor(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: user %s is not a member of tenant %s", apperrors.ErrForbidden, userID, tenantID)
		}
		s.LogError(ctx, err, "Failed to load actor", slog.String("user_id", userID))
		return nil, nil, err
	}
	policy, err := s.loadPolicy(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	return actor, policy, nil
}

func (s *governanceService) loadPolicy(ctx context.Context, tenantID string) (*domain.TenantPolicy, error) {
	policy, err := s.policyRepo.FindTenantPolicy(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenant policy", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return policy, nil
}

// loadPeriod returns nil for documents without a period and for unknown periods;
// the kernel treats both as not open.
func (s *governanceService) loadPeriod(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	if periodID == "" {
		return nil, nil
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, tenantID, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Accounting period not found", slog.String("period_id", periodID))
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load accounting period", slog.String("period_id", periodID))
		return nil, err
	}
	return period, nil
}

func (s *governanceService) loadPostingSnapshot(ctx context.Context, tenantID, documentID string, kreq *governance.TransitionRequest) error {
	var err error
	if kreq.Lines, err = s.documentRepo.FindJournalLines(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to load journal lines", slog.String("document_id", documentID))
		return err
	}
	if kreq.Accounts, err = s.catalogRepo.FindAccountsByIDs(ctx, tenantID, accountIDs(kreq.Lines)); err != nil {
		s.LogError(ctx, err, "Failed to load accounts", slog.String("document_id", documentID))
		return err
	}
	if kreq.TaxLines, err = s.documentRepo.FindTaxLines(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to load tax lines", slog.String("document_id", documentID))
		return err
	}
	if len(kreq.TaxLines) == 0 {
		return nil
	}
	if kreq.TaxRates, err = s.catalogRepo.FindTaxRatesByIDs(ctx, tenantID, taxRateIDs(kreq.TaxLines)); err != nil {
		s.LogError(ctx, err, "Failed to load tax rates", slog.String("document_id", documentID))
		return err
	}
	if kreq.LockedSources, err = s.documentRepo.FindLockedTaxSources(ctx, tenantID, taxSourceIDs(kreq.TaxLines)); err != nil {
		s.LogError(ctx, err, "Failed to load locked tax sources", slog.String("document_id", documentID))
		return err
	}
	return nil
}

// correlationID derives the audit correlation id so that retried identical
// requests collapse onto one audit row. It falls back to a random id.
func (s *governanceService) correlationID(ctx context.Context, params map[string]any) string {
	id, err := governance.BuildDeterministicID(params)
	if err != nil {
		s.LogWarn(ctx, "Falling back to random correlation id", slog.String("error", err.Error()))
		return uuid.NewString()
	}
	return id.EntityID
}

func (s *governanceService) recordDenial(ctx context.Context, correlationID string, doc domain.Document, action domain.Action, userID string, err error) {
	coded, ok := apperrors.AsCoded(err)
	if !ok {
		return
	}
	rec := domain.AuditRecord{
		CorrelationID: correlationID,
		Kind:          auditKindOf(err),
		Outcome:       domain.OutcomeDenied,
		Action:        action,
		DocumentID:    doc.DocumentID,
		DocumentType:  doc.Type,
		TenantID:      doc.TenantID,
		ActorID:       userID,
		RuleCode:      coded.Code(),
		Reason:        err.Error(),
		Details:       coded.Details(),
	}
	var sod *apperrors.SoDViolationError
	if errors.As(err, &sod) {
		rec.RuleCode = sod.RuleCode
	}
	s.LogWarn(ctx, "Governance check denied",
		slog.String("document_id", doc.DocumentID),
		slog.String("action", string(action)),
		slog.String("code", coded.Code()),
		slog.String("reason", err.Error()))
	s.record(ctx, rec)
}

func (s *governanceService) record(ctx context.Context, rec domain.AuditRecord) {
	if s.audit == nil {
		return
	}
	rec.CreatedAt = s.now()
	s.audit.Record(ctx, rec)
}

func auditKindOf(err error) domain.AuditKind {
	switch {
	case errors.Is(err, apperrors.ErrAccessDenied):
		return domain.AuditPermission
	case errors.Is(err, apperrors.ErrSoDViolation):
		return domain.AuditSoD
	case errors.Is(err, apperrors.ErrPeriodNotOpen):
		return domain.AuditPeriod
	case errors.Is(err, apperrors.ErrTaxIntegrityViolation):
		return domain.AuditTax
	case errors.Is(err, apperrors.ErrUnbalancedEntry),
		errors.Is(err, apperrors.ErrMissingDimension),
		errors.Is(err, apperrors.ErrAccountNotPostable):
		return domain.AuditLedger
	}
	return domain.AuditLifecycle
}

func needsPostingSnapshot(a domain.Action) bool {
	return a == domain.ActionApprove || a == domain.ActionPost || a == domain.ActionReverse
}

func accountIDs(lines []domain.JournalLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok || l.AccountID == "" {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}

func taxRateIDs(lines []domain.TaxLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.TaxRateID]; ok {
			continue
		}
		seen[l.TaxRateID] = struct{}{}
		ids = append(ids, l.TaxRateID)
	}
	return ids
}

func taxSourceIDs(lines []domain.TaxLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.SourceID]; ok {
			continue
		}
		seen[l.SourceID] = struct{}{}
		ids = append(ids, l.SourceID)
	}
	return ids
}
