package services

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	"github.com/SscSPs/backoffice_governance/internal/dto"
)

// DocumentLifecycleSvc runs lifecycle transitions on stored documents.
type DocumentLifecycleSvc interface {
	// TransitionDocument loads the document and its snapshots, runs the kernel and
	// persists the result atomically.
	TransitionDocument(ctx context.Context, tenantID, userID, documentID string, req dto.TransitionRequest) (*governance.TransitionResult, error)

	// CheckCreate reports whether the user may create a document of the requested type.
	CheckCreate(ctx context.Context, tenantID, userID string, req dto.CreateCheckRequest) error
}

// LedgerValidatorSvc validates candidate postings without persisting anything.
type LedgerValidatorSvc interface {
	ValidateLedger(ctx context.Context, tenantID string, req dto.ValidateLedgerRequest) (*governance.BalanceResult, error)
}

// GovernanceSvcFacade combines all governance service interfaces.
type GovernanceSvcFacade interface {
	DocumentLifecycleSvc
	LedgerValidatorSvc
}
