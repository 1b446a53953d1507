package dto

import (
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	"github.com/shopspring/decimal"
)

// TransitionRequest asks for one lifecycle action on a stored document.
type TransitionRequest struct {
	Action string `json:"action" binding:"required,action" example:"POST"`
	// ExpectedVersion optionally pins the document version the caller last saw.
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// CreateCheckRequest asks whether a document of the given type may be created.
type CreateCheckRequest struct {
	DocumentType string `json:"documentType" binding:"required,doctype" example:"CUSTOMER_INVOICE"`
	PeriodID     string `json:"periodID,omitempty"`
}

// CreateCheckResponse is returned when creation is allowed.
type CreateCheckResponse struct {
	Allowed bool `json:"allowed"`
}

// JournalLineInput is one candidate line for ledger validation.
type JournalLineInput struct {
	LineID        string          `json:"lineID"`
	AccountID     string          `json:"accountID" binding:"required"`
	Debit         decimal.Decimal `json:"debit" binding:"decimalgte0" swaggertype:"string" example:"100.00"`
	Credit        decimal.Decimal `json:"credit" binding:"decimalgte0" swaggertype:"string" example:"0"`
	LegalEntityID string          `json:"legalEntityID,omitempty"`
	DepartmentID  string          `json:"departmentID,omitempty"`
	ProjectID     string          `json:"projectID,omitempty"`
	FundID        string          `json:"fundID,omitempty"`
	Memo          string          `json:"memo,omitempty"`
}

// TaxLineInput is one candidate tax line for ledger validation.
type TaxLineInput struct {
	TaxLineID     string          `json:"taxLineID" binding:"required"`
	SourceType    string          `json:"sourceType" binding:"required,oneof=LINE DOCUMENT"`
	SourceID      string          `json:"sourceID" binding:"required"`
	TaxRateID     string          `json:"taxRateID" binding:"required"`
	TaxableAmount decimal.Decimal `json:"taxableAmount" binding:"decimalgte0" swaggertype:"string"`
	TaxAmount     decimal.Decimal `json:"taxAmount" binding:"decimalgte0" swaggertype:"string"`
}

// ValidateLedgerRequest is a dry run of the ledger and tax checks.
type ValidateLedgerRequest struct {
	DocumentID   string             `json:"documentID,omitempty"`
	Lines        []JournalLineInput `json:"lines" binding:"required,dive"`
	TaxLines     []TaxLineInput     `json:"taxLines,omitempty" binding:"omitempty,dive"`
	TaxableTotal *decimal.Decimal   `json:"taxableTotal,omitempty" binding:"omitempty,decimalgte0" swaggertype:"string"`
}

// BalanceResponse reports the totals of a balanced posting.
type BalanceResponse struct {
	TotalDebit  string `json:"totalDebit"`
	TotalCredit string `json:"totalCredit"`
	Delta       string `json:"delta"`
	LineCount   int    `json:"lineCount"`
}

// ValidateLedgerResponse is returned when the candidate posting passes every check.
type ValidateLedgerResponse struct {
	Balanced bool            `json:"balanced"`
	Balance  BalanceResponse `json:"balance"`
}

// DocumentResponse exposes the kernel-relevant view of a document.
type DocumentResponse struct {
	DocumentID            string     `json:"documentID"`
	Type                  string     `json:"type"`
	Number                string     `json:"number,omitempty"`
	Status                string     `json:"status"`
	Version               int64      `json:"version"`
	PeriodID              string     `json:"periodID,omitempty"`
	ReversalOfID          string     `json:"reversalOfID,omitempty"`
	ReversedByID          string     `json:"reversedByID,omitempty"`
	CreatedByID           string     `json:"createdByID"`
	SubmittedByID         string     `json:"submittedByID,omitempty"`
	ReviewedByID          string     `json:"reviewedByID,omitempty"`
	ApprovedByID          string     `json:"approvedByID,omitempty"`
	PostedByID            string     `json:"postedByID,omitempty"`
	RejectedByID          string     `json:"rejectedByID,omitempty"`
	ReturnedByID          string     `json:"returnedByID,omitempty"`
	ReversalInitiatedByID string     `json:"reversalInitiatedByID,omitempty"`
	PostedAt              *time.Time `json:"postedAt,omitempty"`
	LastUpdatedAt         time.Time  `json:"lastUpdatedAt"`
}

// JournalLineResponse is one line of a generated journal.
type JournalLineResponse struct {
	LineID    string `json:"lineID"`
	AccountID string `json:"accountID"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
}

// GeneratedJournalResponse is the GL journal produced by a post or reversal.
type GeneratedJournalResponse struct {
	JournalID        string                `json:"journalID"`
	SourceDocumentID string                `json:"sourceDocumentID"`
	ReversalOfID     string                `json:"reversalOfID,omitempty"`
	PeriodID         string                `json:"periodID"`
	PostedAt         time.Time             `json:"postedAt"`
	TotalAmount      string                `json:"totalAmount"`
	Lines            []JournalLineResponse `json:"lines"`
}

// TransitionResponse is returned for a successful lifecycle transition.
type TransitionResponse struct {
	Document         DocumentResponse          `json:"document"`
	PreviousStatus   string                    `json:"previousStatus"`
	ReversalDocument *DocumentResponse         `json:"reversalDocument,omitempty"`
	GeneratedJournal *GeneratedJournalResponse `json:"generatedJournal,omitempty"`
	Balance          *BalanceResponse          `json:"balance,omitempty"`
}

// ToJournalLines converts request lines to domain lines.
func ToJournalLines(in []JournalLineInput) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(in))
	for i, l := range in {
		lines[i] = domain.JournalLine{
			LineID:        l.LineID,
			AccountID:     l.AccountID,
			Debit:         l.Debit,
			Credit:        l.Credit,
			LegalEntityID: l.LegalEntityID,
			DepartmentID:  l.DepartmentID,
			ProjectID:     l.ProjectID,
			FundID:        l.FundID,
			Memo:          l.Memo,
		}
	}
	return lines
}

// ToTaxLines converts request tax lines to domain tax lines.
func ToTaxLines(in []TaxLineInput) []domain.TaxLine {
	lines := make([]domain.TaxLine, len(in))
	for i, l := range in {
		lines[i] = domain.TaxLine{
			TaxLineID:     l.TaxLineID,
			SourceType:    domain.TaxSourceType(l.SourceType),
			SourceID:      l.SourceID,
			TaxRateID:     l.TaxRateID,
			TaxableAmount: l.TaxableAmount,
			TaxAmount:     l.TaxAmount,
		}
	}
	return lines
}

// ToBalanceResponse converts a kernel balance result.
func ToBalanceResponse(b governance.BalanceResult) BalanceResponse {
	return BalanceResponse{
		TotalDebit:  b.TotalDebit.StringFixed(2),
		TotalCredit: b.TotalCredit.StringFixed(2),
		Delta:       b.Delta.StringFixed(2),
		LineCount:   b.LineCount,
	}
}

// ToDocumentResponse converts a domain document.
func ToDocumentResponse(d domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:            d.DocumentID,
		Type:                  string(d.Type),
		Number:                d.Number,
		Status:                string(d.Status),
		Version:               d.Version,
		PeriodID:              d.PeriodID,
		ReversalOfID:          d.ReversalOfID,
		ReversedByID:          d.ReversedByID,
		CreatedByID:           d.CreatedByID,
		SubmittedByID:         d.SubmittedByID,
		ReviewedByID:          d.ReviewedByID,
		ApprovedByID:          d.ApprovedByID,
		PostedByID:            d.PostedByID,
		RejectedByID:          d.RejectedByID,
		ReturnedByID:          d.ReturnedByID,
		ReversalInitiatedByID: d.ReversalInitiatedByID,
		PostedAt:              d.PostedAt,
		LastUpdatedAt:         d.LastUpdatedAt,
	}
}

// ToGeneratedJournalResponse converts a generated journal.
func ToGeneratedJournalResponse(j domain.GeneratedJournal) GeneratedJournalResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i, l := range j.Lines {
		lines[i] = JournalLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Debit:     l.Debit.StringFixed(2),
			Credit:    l.Credit.StringFixed(2),
		}
	}
	return GeneratedJournalResponse{
		JournalID:        j.JournalID,
		SourceDocumentID: j.SourceDocumentID,
		ReversalOfID:     j.ReversalOfID,
		PeriodID:         j.PeriodID,
		PostedAt:         j.PostedAt,
		TotalAmount:      j.TotalAmount.StringFixed(2),
		Lines:            lines,
	}
}

// ToTransitionResponse converts a kernel transition result.
func ToTransitionResponse(r governance.TransitionResult) TransitionResponse {
	resp := TransitionResponse{
		Document:       ToDocumentResponse(r.Document),
		PreviousStatus: string(r.PreviousStatus),
	}
	if r.ReversalDocument != nil {
		rev := ToDocumentResponse(*r.ReversalDocument)
		resp.ReversalDocument = &rev
	}
	if r.GeneratedJournal != nil {
		j := ToGeneratedJournalResponse(*r.GeneratedJournal)
		resp.GeneratedJournal = &j
	}
	if r.Balance != nil {
		b := ToBalanceResponse(*r.Balance)
		resp.Balance = &b
	}
	return resp
}
