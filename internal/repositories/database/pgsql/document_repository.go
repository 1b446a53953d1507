package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/models"
	"github.com/SscSPs/backoffice_governance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// PgxDocumentRepository reads document snapshots and persists lifecycle transitions.
type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db DB) *PgxDocumentRepository {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const (
	selectDocumentFields = `
		document_id, tenant_id, document_type, number, status, version,
		period_id, reversal_of_id, corrects_journal_id, reversed_by_id, taxable_total,
		created_by, submitted_by, reviewed_by, approved_by, posted_by,
		rejected_by, returned_by, reversal_initiated_by,
		checklist_completed_by, exercised_permissions,
		created_at, submitted_at, reviewed_at, approved_at, posted_at,
		rejected_at, returned_at, reversed_at, last_updated_at, last_updated_by
	`

	findDocumentByIDQuery = `
		SELECT ` + selectDocumentFields + `
		FROM documents
		WHERE tenant_id = $1 AND document_id = $2;
	`

	updateDocumentQuery = `
		UPDATE documents SET
			status = $3, version = $4, period_id = $5, reversed_by_id = $6,
			submitted_by = $7, reviewed_by = $8, approved_by = $9, posted_by = $10,
			rejected_by = $11, returned_by = $12, reversal_initiated_by = $13,
			exercised_permissions = $14,
			submitted_at = $15, reviewed_at = $16, approved_at = $17, posted_at = $18,
			rejected_at = $19, returned_at = $20, reversed_at = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE document_id = $1 AND version = $2;
	`

	insertDocumentQuery = `
		INSERT INTO documents (` + selectDocumentFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);
	`

	findJournalLinesQuery = `
		SELECT line_id, document_id, line_no, account_id, debit, credit,
		       legal_entity_id, department_id, project_id, fund_id, memo
		FROM document_lines
		WHERE document_id = $1
		ORDER BY line_no;
	`

	findTaxLinesQuery = `
		SELECT tax_line_id, document_id, source_type, source_id, tax_rate_id, taxable_amount, tax_amount
		FROM tax_lines
		WHERE document_id = $1
		ORDER BY tax_line_id;
	`

	findLockedTaxSourcesQuery = `
		SELECT source_id
		FROM tax_source_locks
		WHERE tenant_id = $1 AND source_id = ANY($2);
	`

	insertGeneratedJournalQuery = `
		INSERT INTO generated_journals (
			journal_id, tenant_id, source_document_id, reversal_of_id, period_id,
			posted_at, posted_by, total_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	insertGeneratedJournalLineQuery = `
		INSERT INTO generated_journal_lines (
			line_id, journal_id, line_no, account_id, debit, credit,
			legal_entity_id, department_id, project_id, fund_id, memo
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	lockTaxSourceQuery = `
		INSERT INTO tax_source_locks (tenant_id, source_id, document_id, locked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, source_id) DO NOTHING;
	`
)

// FindDocumentByID implements portsrepo.DocumentReader
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	var m models.Document
	err := r.Pool.QueryRow(ctx, findDocumentByIDQuery, tenantID, documentID).Scan(
		&m.DocumentID,
		&m.TenantID,
		&m.DocumentType,
		&m.Number,
		&m.Status,
		&m.Version,
		&m.PeriodID,
		&m.ReversalOfID,
		&m.CorrectsJournalID,
		&m.ReversedByID,
		&m.TaxableTotal,
		&m.CreatedBy,
		&m.SubmittedBy,
		&m.ReviewedBy,
		&m.ApprovedBy,
		&m.PostedBy,
		&m.RejectedBy,
		&m.ReturnedBy,
		&m.ReversalInitiatedBy,
		&m.ChecklistCompletedBy,
		&m.ExercisedPermissions,
		&m.CreatedAt,
		&m.SubmittedAt,
		&m.ReviewedAt,
		&m.ApprovedAt,
		&m.PostedAt,
		&m.RejectedAt,
		&m.ReturnedAt,
		&m.ReversedAt,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFound(err, "document", documentID)
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}

// FindJournalLines implements portsrepo.DocumentReader
func (r *PgxDocumentRepository) FindJournalLines(ctx context.Context, documentID string) ([]domain.JournalLine, error) {
	rows, err := r.Pool.Query(ctx, findJournalLinesQuery, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for document "+documentID, err)
	}
	defer rows.Close()

	lines := make([]domain.JournalLine, 0)
	for rows.Next() {
		var m models.DocumentLine
		if err := rows.Scan(
			&m.LineID,
			&m.DocumentID,
			&m.LineNo,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.LegalEntityID,
			&m.DepartmentID,
			&m.ProjectID,
			&m.FundID,
			&m.Memo,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document line", err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate document lines", err)
	}
	return lines, nil
}

// FindTaxLines implements portsrepo.DocumentReader
func (r *PgxDocumentRepository) FindTaxLines(ctx context.Context, documentID string) ([]domain.TaxLine, error) {
	rows, err := r.Pool.Query(ctx, findTaxLinesQuery, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax lines for document "+documentID, err)
	}
	defer rows.Close()

	lines := make([]domain.TaxLine, 0)
	for rows.Next() {
		var m models.TaxLine
		if err := rows.Scan(
			&m.TaxLineID,
			&m.DocumentID,
			&m.SourceType,
			&m.SourceID,
			&m.TaxRateID,
			&m.TaxableAmount,
			&m.TaxAmount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax line", err)
		}
		lines = append(lines, mapping.ToDomainTaxLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate tax lines", err)
	}
	return lines, nil
}

// FindLockedTaxSources implements portsrepo.DocumentReader
func (r *PgxDocumentRepository) FindLockedTaxSources(ctx context.Context, tenantID string, sourceIDs []string) (map[string]struct{}, error) {
	locked := make(map[string]struct{})
	if len(sourceIDs) == 0 {
		return locked, nil
	}

	rows, err := r.Pool.Query(ctx, findLockedTaxSourcesQuery, tenantID, sourceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax source locks", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax source lock", err)
		}
		locked[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate tax source locks", err)
	}
	return locked, nil
}

// SaveTransition implements portsrepo.DocumentWriter. The document update is
// guarded by its version; everything the transition produced is written in the
// same transaction.
func (r *PgxDocumentRepository) SaveTransition(ctx context.Context, write portsrepo.TransitionWrite) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelDocument(write.Document)
	tag, err := tx.Exec(ctx, updateDocumentQuery,
		m.DocumentID,
		write.ExpectedVersion,
		m.Status,
		m.Version,
		m.PeriodID,
		m.ReversedByID,
		m.SubmittedBy,
		m.ReviewedBy,
		m.ApprovedBy,
		m.PostedBy,
		m.RejectedBy,
		m.ReturnedBy,
		m.ReversalInitiatedBy,
		m.ExercisedPermissions,
		m.SubmittedAt,
		m.ReviewedAt,
		m.ApprovedAt,
		m.PostedAt,
		m.RejectedAt,
		m.ReturnedAt,
		m.ReversedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update document "+m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: document %s is no longer at version %d", apperrors.ErrConcurrencyConflict, m.DocumentID, write.ExpectedVersion)
	}

	batch := &pgx.Batch{}
	if write.ReversalDocument != nil {
		queueInsertDocument(batch, mapping.ToModelDocument(*write.ReversalDocument))
	}
	if write.GeneratedJournal != nil {
		queueInsertGeneratedJournal(batch, *write.GeneratedJournal)
	}
	for _, sourceID := range write.LockTaxSources {
		batch.Queue(lockTaxSourceQuery, m.TenantID, sourceID, m.DocumentID, m.LastUpdatedAt)
	}

	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute transition batch for document "+m.DocumentID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func queueInsertDocument(batch *pgx.Batch, m models.Document) {
	batch.Queue(insertDocumentQuery,
		m.DocumentID,
		m.TenantID,
		m.DocumentType,
		m.Number,
		m.Status,
		m.Version,
		m.PeriodID,
		m.ReversalOfID,
		m.CorrectsJournalID,
		m.ReversedByID,
		m.TaxableTotal,
		m.CreatedBy,
		m.SubmittedBy,
		m.ReviewedBy,
		m.ApprovedBy,
		m.PostedBy,
		m.RejectedBy,
		m.ReturnedBy,
		m.ReversalInitiatedBy,
		m.ChecklistCompletedBy,
		m.ExercisedPermissions,
		m.CreatedAt,
		m.SubmittedAt,
		m.ReviewedAt,
		m.ApprovedAt,
		m.PostedAt,
		m.RejectedAt,
		m.ReturnedAt,
		m.ReversedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
}

func queueInsertGeneratedJournal(batch *pgx.Batch, j domain.GeneratedJournal) {
	h := mapping.ToModelGeneratedJournal(j)
	batch.Queue(insertGeneratedJournalQuery,
		h.JournalID,
		h.TenantID,
		h.SourceDocumentID,
		h.ReversalOfID,
		h.PeriodID,
		h.PostedAt,
		h.PostedBy,
		h.TotalAmount,
	)
	for i, line := range j.Lines {
		l := mapping.ToModelDocumentLine(j.JournalID, i+1, line)
		batch.Queue(insertGeneratedJournalLineQuery,
			l.LineID,
			l.DocumentID,
			l.LineNo,
			l.AccountID,
			l.Debit,
			l.Credit,
			l.LegalEntityID,
			l.DepartmentID,
			l.ProjectID,
			l.FundID,
			l.Memo,
		)
	}
}
