package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/core/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testTenant = "tenant-1"

type GovernanceServiceTestSuite struct {
	suite.Suite
	actors    *MockActorRepository
	policies  *MockPolicyRepository
	documents *MockDocumentRepository
	periods   *MockPeriodRepository
	catalog   *MockCatalogRepository
	auditor   *recordingAuditor
	service   portssvc.GovernanceSvcFacade
	ctx       context.Context
}

func (suite *GovernanceServiceTestSuite) SetupTest() {
	suite.actors = new(MockActorRepository)
	suite.policies = new(MockPolicyRepository)
	suite.documents = new(MockDocumentRepository)
	suite.periods = new(MockPeriodRepository)
	suite.catalog = new(MockCatalogRepository)
	suite.auditor = &recordingAuditor{}
	suite.ctx = context.Background()

	repos := portsrepo.RepositoryProvider{
		ActorRepo:    suite.actors,
		PolicyRepo:   suite.policies,
		DocumentRepo: suite.documents,
		PeriodRepo:   suite.periods,
		CatalogRepo:  suite.catalog,
	}
	suite.service = services.NewGovernanceService(repos, services.WithAuditRecorder(suite.auditor))

	policy := domain.DefaultTenantPolicy(testTenant)
	suite.policies.On("FindTenantPolicy", mock.Anything, testTenant).Return(&policy, nil).Maybe()
}

func TestGovernanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GovernanceServiceTestSuite))
}

func (suite *GovernanceServiceTestSuite) givenActor(userID string, perms ...string) {
	suite.actors.On("FindActor", mock.Anything, testTenant, userID).Return(&domain.Actor{
		UserID:      userID,
		TenantID:    testTenant,
		Permissions: domain.NewPermissionSet(perms...),
	}, nil)
}

func (suite *GovernanceServiceTestSuite) givenDocument(doc domain.Document) {
	suite.documents.On("FindDocumentByID", mock.Anything, testTenant, doc.DocumentID).Return(&doc, nil)
}

func balancedLines() []domain.JournalLine {
	return []domain.JournalLine{
		{LineID: "l1", AccountID: "cash", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{LineID: "l2", AccountID: "revenue", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}
}

func postableAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		"cash":    {AccountID: "cash", IsPostingAllowed: true},
		"revenue": {AccountID: "revenue", IsPostingAllowed: true},
	}
}

func approvedJournal() domain.Document {
	return domain.Document{
		DocumentID: "doc-1",
		TenantID:   testTenant,
		Type:       domain.DocumentJournalEntry,
		Status:     domain.StatusApproved,
		Version:    3,
		PeriodID:   "2026-03",
		ActorTrail: domain.ActorTrail{
			CreatedByID:   "maker",
			SubmittedByID: "maker",
			ApprovedByID:  "approver",
		},
	}
}

// --- TransitionDocument ---

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_SubmitSuccess() {
	suite.givenActor("maker", "GL_JOURNAL_SUBMIT")
	suite.givenDocument(domain.Document{
		DocumentID: "doc-1",
		TenantID:   testTenant,
		Type:       domain.DocumentJournalEntry,
		Status:     domain.StatusDraft,
		Version:    1,
		ActorTrail: domain.ActorTrail{CreatedByID: "maker"},
	})
	suite.documents.On("SaveTransition", mock.Anything, mock.MatchedBy(func(w portsrepo.TransitionWrite) bool {
		return w.ExpectedVersion == 1 &&
			w.Document.Status == domain.StatusSubmitted &&
			w.Document.Version == 2 &&
			w.Document.SubmittedByID == "maker"
	})).Return(nil).Once()

	result, err := suite.service.TransitionDocument(suite.ctx, testTenant, "maker", "doc-1", dto.TransitionRequest{Action: "SUBMIT"})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, result.PreviousStatus)
	suite.Equal(domain.StatusSubmitted, result.Document.Status)
	suite.documents.AssertExpectations(suite.T())

	records := suite.auditor.all()
	suite.Require().Len(records, 1)
	suite.Equal(domain.OutcomeAllowed, records[0].Outcome)
	suite.Equal(domain.AuditLifecycle, records[0].Kind)
	suite.NotEmpty(records[0].CorrelationID)
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_MissingPermissionIsAudited() {
	suite.givenActor("maker", "GL_JOURNAL_CREATE")
	suite.givenDocument(domain.Document{
		DocumentID: "doc-1",
		TenantID:   testTenant,
		Type:       domain.DocumentJournalEntry,
		Status:     domain.StatusDraft,
		Version:    1,
		ActorTrail: domain.ActorTrail{CreatedByID: "maker"},
	})

	_, err := suite.service.TransitionDocument(suite.ctx, testTenant, "maker", "doc-1", dto.TransitionRequest{Action: "SUBMIT"})

	suite.ErrorIs(err, apperrors.ErrAccessDenied)
	suite.documents.AssertNotCalled(suite.T(), "SaveTransition", mock.Anything, mock.Anything)

	records := suite.auditor.all()
	suite.Require().Len(records, 1)
	suite.Equal(domain.OutcomeDenied, records[0].Outcome)
	suite.Equal(domain.AuditPermission, records[0].Kind)
	suite.Equal(apperrors.CodeAccessDenied, records[0].RuleCode)
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_NonMemberIsForbidden() {
	suite.actors.On("FindActor", mock.Anything, testTenant, "stranger").
		Return(nil, fmt.Errorf("%w: member", apperrors.ErrNotFound))

	_, err := suite.service.TransitionDocument(suite.ctx, testTenant, "stranger", "doc-1", dto.TransitionRequest{Action: "SUBMIT"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.documents.AssertNotCalled(suite.T(), "FindDocumentByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_StaleExpectedVersion() {
	suite.givenActor("maker", "GL_JOURNAL_SUBMIT")
	suite.givenDocument(domain.Document{
		DocumentID: "doc-1",
		TenantID:   testTenant,
		Type:       domain.DocumentJournalEntry,
		Status:     domain.StatusDraft,
		Version:    4,
		ActorTrail: domain.ActorTrail{CreatedByID: "maker"},
	})
	stale := int64(3)

	_, err := suite.service.TransitionDocument(suite.ctx, testTenant, "maker", "doc-1",
		dto.TransitionRequest{Action: "SUBMIT", ExpectedVersion: &stale})

	suite.ErrorIs(err, apperrors.ErrConcurrencyConflict)
	suite.Empty(suite.auditor.all())
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_PostIntoClosedPeriod() {
	suite.givenActor("poster", "GL_JOURNAL_POST")
	suite.givenDocument(approvedJournal())
	suite.periods.On("FindPeriodByID", mock.Anything, testTenant, "2026-03").Return(&domain.AccountingPeriod{
		PeriodID: "2026-03",
		TenantID: testTenant,
		Name:     "March 2026",
		Status:   domain.PeriodClosed,
	}, nil)
	suite.documents.On("FindJournalLines", mock.Anything, "doc-1").Return(balancedLines(), nil)
	suite.catalog.On("FindAccountsByIDs", mock.Anything, testTenant, []string{"cash", "revenue"}).Return(postableAccounts(), nil)
	suite.documents.On("FindTaxLines", mock.Anything, "doc-1").Return([]domain.TaxLine{}, nil)

	_, err := suite.service.TransitionDocument(suite.ctx, testTenant, "poster", "doc-1", dto.TransitionRequest{Action: "POST"})

	suite.ErrorIs(err, apperrors.ErrPeriodNotOpen)
	suite.documents.AssertNotCalled(suite.T(), "SaveTransition", mock.Anything, mock.Anything)

	records := suite.auditor.all()
	suite.Require().Len(records, 1)
	suite.Equal(domain.AuditPeriod, records[0].Kind)
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_PostGeneratesJournal() {
	suite.givenActor("poster", "GL_JOURNAL_POST")
	suite.givenDocument(approvedJournal())
	suite.periods.On("FindPeriodByID", mock.Anything, testTenant, "2026-03").Return(&domain.AccountingPeriod{
		PeriodID: "2026-03",
		TenantID: testTenant,
		Status:   domain.PeriodOpen,
	}, nil)
	suite.documents.On("FindJournalLines", mock.Anything, "doc-1").Return(balancedLines(), nil)
	suite.catalog.On("FindAccountsByIDs", mock.Anything, testTenant, []string{"cash", "revenue"}).Return(postableAccounts(), nil)
	suite.documents.On("FindTaxLines", mock.Anything, "doc-1").Return([]domain.TaxLine{}, nil)
	suite.documents.On("SaveTransition", mock.Anything, mock.MatchedBy(func(w portsrepo.TransitionWrite) bool {
		return w.ExpectedVersion == 3 &&
			w.Document.Status == domain.StatusPosted &&
			w.GeneratedJournal != nil &&
			len(w.GeneratedJournal.Lines) == 2
	})).Return(nil).Once()

	result, err := suite.service.TransitionDocument(suite.ctx, testTenant, "poster", "doc-1", dto.TransitionRequest{Action: "POST"})

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Balance)
	suite.True(result.Balance.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.documents.AssertExpectations(suite.T())
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_ApproverCannotPost() {
	suite.givenActor("approver", "GL_JOURNAL_POST")
	suite.givenDocument(approvedJournal())
	suite.periods.On("FindPeriodByID", mock.Anything, testTenant, "2026-03").Return(&domain.AccountingPeriod{
		PeriodID: "2026-03",
		TenantID: testTenant,
		Status:   domain.PeriodOpen,
	}, nil)
	suite.documents.On("FindJournalLines", mock.Anything, "doc-1").Return(balancedLines(), nil)
	suite.catalog.On("FindAccountsByIDs", mock.Anything, testTenant, []string{"cash", "revenue"}).Return(postableAccounts(), nil)
	suite.documents.On("FindTaxLines", mock.Anything, "doc-1").Return([]domain.TaxLine{}, nil)

	_, err := suite.service.TransitionDocument(suite.ctx, testTenant, "approver", "doc-1", dto.TransitionRequest{Action: "POST"})

	suite.ErrorIs(err, apperrors.ErrSoDViolation)
	records := suite.auditor.all()
	suite.Require().Len(records, 1)
	suite.Equal(domain.AuditSoD, records[0].Kind)
	suite.Equal("SOD_APPROVER_POSTER", records[0].RuleCode)
}

func (suite *GovernanceServiceTestSuite) TestTransitionDocument_CorrelationIDIsStable() {
	suite.givenActor("maker", "GL_JOURNAL_CREATE")
	suite.givenDocument(domain.Document{
		DocumentID: "doc-1",
		TenantID:   testTenant,
		Type:       domain.DocumentJournalEntry,
		Status:     domain.StatusDraft,
		Version:    1,
	})

	for i := 0; i < 2; i++ {
		_, err := suite.service.TransitionDocument(suite.ctx, testTenant, "maker", "doc-1", dto.TransitionRequest{Action: "SUBMIT"})
		suite.Error(err)
	}

	records := suite.auditor.all()
	suite.Require().Len(records, 2)
	suite.Equal(records[0].CorrelationID, records[1].CorrelationID)
}

// --- CheckCreate ---

func (suite *GovernanceServiceTestSuite) TestCheckCreate_PaymentNeedsOpenPeriod() {
	suite.givenActor("clerk", "TR_PAYMENT_CREATE")
	suite.periods.On("FindPeriodByID", mock.Anything, testTenant, "2026-01").Return(&domain.AccountingPeriod{
		PeriodID: "2026-01",
		TenantID: testTenant,
		Status:   domain.PeriodLocked,
	}, nil)

	err := suite.service.CheckCreate(suite.ctx, testTenant, "clerk", dto.CreateCheckRequest{DocumentType: "PAYMENT", PeriodID: "2026-01"})

	suite.ErrorIs(err, apperrors.ErrPeriodNotOpen)
	records := suite.auditor.all()
	suite.Require().Len(records, 1)
	suite.Equal(domain.ActionCreate, records[0].Action)
}

func (suite *GovernanceServiceTestSuite) TestCheckCreate_JournalWithoutPeriodAllowed() {
	suite.givenActor("clerk", "GL_JOURNAL_CREATE")

	err := suite.service.CheckCreate(suite.ctx, testTenant, "clerk", dto.CreateCheckRequest{DocumentType: "JOURNAL_ENTRY"})

	suite.NoError(err)
	suite.Empty(suite.auditor.all())
}

// --- ValidateLedger ---

func (suite *GovernanceServiceTestSuite) TestValidateLedger_Balanced() {
	suite.catalog.On("FindAccountsByIDs", mock.Anything, testTenant, []string{"cash", "revenue"}).Return(postableAccounts(), nil)

	result, err := suite.service.ValidateLedger(suite.ctx, testTenant, dto.ValidateLedgerRequest{
		Lines: []dto.JournalLineInput{
			{AccountID: "cash", Debit: decimal.RequireFromString("250.10"), Credit: decimal.Zero},
			{AccountID: "revenue", Debit: decimal.Zero, Credit: decimal.RequireFromString("250.10")},
		},
	})

	suite.Require().NoError(err)
	suite.True(result.Delta.IsZero())
	suite.Equal(2, result.LineCount)
	suite.policies.AssertNotCalled(suite.T(), "FindTenantPolicy", mock.Anything, mock.Anything)
}

func (suite *GovernanceServiceTestSuite) TestValidateLedger_Unbalanced() {
	suite.catalog.On("FindAccountsByIDs", mock.Anything, testTenant, []string{"cash", "revenue"}).Return(postableAccounts(), nil)

	_, err := suite.service.ValidateLedger(suite.ctx, testTenant, dto.ValidateLedgerRequest{
		Lines: []dto.JournalLineInput{
			{AccountID: "cash", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{AccountID: "revenue", Debit: decimal.Zero, Credit: decimal.NewFromInt(99)},
		},
	})

	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
}

func (suite *GovernanceServiceTestSuite) TestValidateLedger_TaxMismatch() {
	suite.catalog.On("FindAccountsByIDs", mock.Anything, testTenant, []string{"cash", "revenue"}).Return(postableAccounts(), nil)
	suite.catalog.On("FindTaxRatesByIDs", mock.Anything, testTenant, []string{"vat16"}).Return(map[string]domain.TaxRate{
		"vat16": {TaxRateID: "vat16", Code: "VAT16", Rate: decimal.RequireFromString("0.16")},
	}, nil)
	suite.documents.On("FindLockedTaxSources", mock.Anything, testTenant, []string{"doc-9"}).Return(map[string]struct{}{}, nil)
	taxable := decimal.NewFromInt(100)

	_, err := suite.service.ValidateLedger(suite.ctx, testTenant, dto.ValidateLedgerRequest{
		DocumentID: "doc-9",
		Lines: []dto.JournalLineInput{
			{AccountID: "cash", Debit: decimal.NewFromInt(116), Credit: decimal.Zero},
			{AccountID: "revenue", Debit: decimal.Zero, Credit: decimal.NewFromInt(116)},
		},
		TaxLines: []dto.TaxLineInput{
			{SourceType: "DOCUMENT", SourceID: "doc-9", TaxRateID: "vat16", TaxableAmount: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(15)},
		},
		TaxableTotal: &taxable,
	})

	suite.ErrorIs(err, apperrors.ErrTaxIntegrityViolation)
}

// The clock option is exercised so audit timestamps are deterministic.
func TestGovernanceService_AuditTimestampUsesClock(t *testing.T) {
	actors := new(MockActorRepository)
	policies := new(MockPolicyRepository)
	auditor := &recordingAuditor{}
	fixed := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	policy := domain.DefaultTenantPolicy(testTenant)
	actors.On("FindActor", mock.Anything, testTenant, "clerk").Return(&domain.Actor{UserID: "clerk", TenantID: testTenant}, nil)
	policies.On("FindTenantPolicy", mock.Anything, testTenant).Return(&policy, nil)

	svc := services.NewGovernanceService(
		portsrepo.RepositoryProvider{ActorRepo: actors, PolicyRepo: policies},
		services.WithAuditRecorder(auditor),
		services.WithServiceClock(func() time.Time { return fixed }),
	)

	err := svc.CheckCreate(context.Background(), testTenant, "clerk", dto.CreateCheckRequest{DocumentType: "JOURNAL_ENTRY"})
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)

	records := auditor.all()
	if assert.Len(t, records, 1) {
		assert.Equal(t, fixed, records[0].CreatedAt)
	}
}
