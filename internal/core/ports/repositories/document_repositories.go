package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// TransitionWrite is everything one successful transition persists atomically.
type TransitionWrite struct {
	// Document is the new state; it replaces the stored row only if that row is
	// still at ExpectedVersion.
	Document         domain.Document
	ExpectedVersion  int64
	ReversalDocument *domain.Document
	GeneratedJournal *domain.GeneratedJournal
	// LockTaxSources marks these tax sources as locked once the document posts.
	LockTaxSources []string
}

// DocumentReader defines read operations for document snapshots.
type DocumentReader interface {
	FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.Document, error)
	FindJournalLines(ctx context.Context, documentID string) ([]domain.JournalLine, error)
	FindTaxLines(ctx context.Context, documentID string) ([]domain.TaxLine, error)
	// FindLockedTaxSources returns the subset of sourceIDs already locked.
	FindLockedTaxSources(ctx context.Context, tenantID string, sourceIDs []string) (map[string]struct{}, error)
}

// DocumentWriter defines write operations for document transitions.
type DocumentWriter interface {
	// SaveTransition returns apperrors.ErrConcurrencyConflict when the stored
	// version no longer matches ExpectedVersion.
	SaveTransition(ctx context.Context, write TransitionWrite) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
