package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Document is a documents row. Nullable text columns use sql.NullString.
type Document struct {
	DocumentID           string                `db:"document_id"`
	TenantID             string                `db:"tenant_id"`
	DocumentType         string                `db:"document_type"`
	Number               sql.NullString        `db:"number"`
	Status               string                `db:"status"`
	Version              int64                 `db:"version"`
	PeriodID             sql.NullString        `db:"period_id"`
	ReversalOfID         sql.NullString        `db:"reversal_of_id"`
	CorrectsJournalID    sql.NullString        `db:"corrects_journal_id"`
	ReversedByID         sql.NullString        `db:"reversed_by_id"`
	TaxableTotal         decimal.NullDecimal   `db:"taxable_total"`
	CreatedBy            string                `db:"created_by"`
	SubmittedBy          sql.NullString        `db:"submitted_by"`
	ReviewedBy           sql.NullString        `db:"reviewed_by"`
	ApprovedBy           sql.NullString        `db:"approved_by"`
	PostedBy             sql.NullString        `db:"posted_by"`
	RejectedBy           sql.NullString        `db:"rejected_by"`
	ReturnedBy           sql.NullString        `db:"returned_by"`
	ReversalInitiatedBy  sql.NullString        `db:"reversal_initiated_by"`
	ChecklistCompletedBy []string              `db:"checklist_completed_by"`
	ExercisedPermissions []ExercisedPermission `db:"exercised_permissions"`  // jsonb
	CreatedAt            time.Time             `db:"created_at"`
	SubmittedAt          *time.Time            `db:"submitted_at"`
	ReviewedAt           *time.Time            `db:"reviewed_at"`
	ApprovedAt           *time.Time            `db:"approved_at"`
	PostedAt             *time.Time            `db:"posted_at"`
	RejectedAt           *time.Time            `db:"rejected_at"`
	ReturnedAt           *time.Time            `db:"returned_at"`
	ReversedAt           *time.Time            `db:"reversed_at"`
	LastUpdatedAt        time.Time             `db:"last_updated_at"`
	LastUpdatedBy        string                `db:"last_updated_by"`
}

// ExercisedPermission is one element of documents.exercised_permissions.
type ExercisedPermission struct {
	Permission string `json:"permission"`
	UserID     string `json:"userID"`
}

// DocumentLine is a document_lines row, the candidate posting of a document.
type DocumentLine struct {
	LineID        string          `db:"line_id"`
	DocumentID    string          `db:"document_id"`
	LineNo        int             `db:"line_no"`
	AccountID     string          `db:"account_id"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	LegalEntityID sql.NullString  `db:"legal_entity_id"`
	DepartmentID  sql.NullString  `db:"department_id"`
	ProjectID     sql.NullString  `db:"project_id"`
	FundID        sql.NullString  `db:"fund_id"`
	Memo          sql.NullString  `db:"memo"`
}

// TaxLine is a tax_lines row.
type TaxLine struct {
	TaxLineID     string          `db:"tax_line_id"`
	DocumentID    string          `db:"document_id"`
	SourceType    string          `db:"source_type"`
	SourceID      string          `db:"source_id"`
	TaxRateID     string          `db:"tax_rate_id"`
	TaxableAmount decimal.Decimal `db:"taxable_amount"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
}

// GeneratedJournal is a generated_journals row.
type GeneratedJournal struct {
	JournalID        string          `db:"journal_id"`
	TenantID         string          `db:"tenant_id"`
	SourceDocumentID string          `db:"source_document_id"`
	ReversalOfID     sql.NullString  `db:"reversal_of_id"`
	PeriodID         sql.NullString  `db:"period_id"`
	PostedAt         time.Time       `db:"posted_at"`
	PostedBy         string          `db:"posted_by"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
}
