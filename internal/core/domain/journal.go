package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a single line of a candidate or generated GL posting.
// Debit and Credit are non-negative and at most one of them is nonzero.
type JournalLine struct {
	LineID        string          `json:"lineID"`
	AccountID     string          `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	LegalEntityID string          `json:"legalEntityID,omitempty"`
	DepartmentID  string          `json:"departmentID,omitempty"`
	ProjectID     string          `json:"projectID,omitempty"`
	FundID        string          `json:"fundID,omitempty"`
	Memo          string          `json:"memo,omitempty"`
}

// DimensionValue returns the value the line carries for dim.
func (l JournalLine) DimensionValue(dim Dimension) string {
	switch dim {
	case DimensionLegalEntity:
		return l.LegalEntityID
	case DimensionDepartment:
		return l.DepartmentID
	case DimensionProject:
		return l.ProjectID
	case DimensionFund:
		return l.FundID
	default:
		return ""
	}
}

// Amount is the nonzero side of the line (debit wins when both are zero).
func (l JournalLine) Amount() decimal.Decimal {
	if l.Credit.IsPositive() {
		return l.Credit
	}
	return l.Debit
}

// Mirrored returns the line with debit and credit swapped, as booked by a reversal.
func (l JournalLine) Mirrored(lineID string) JournalLine {
	m := l
	m.LineID = lineID
	m.Debit, m.Credit = l.Credit, l.Debit
	return m
}

// GeneratedJournal is the GL journal produced when a document is posted or reversed.
type GeneratedJournal struct {
	JournalID        string          `json:"journalID"`
	TenantID         string          `json:"tenantID"`
	SourceDocumentID string          `json:"sourceDocumentID"`
	PeriodID         string          `json:"periodID"`
	PostedAt         time.Time       `json:"postedAt"`
	PostedByID       string          `json:"postedByID"`
	ReversalOfID     string          `json:"reversalOfID,omitempty"`
	Lines            []JournalLine   `json:"lines"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}
