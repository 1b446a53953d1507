package mapping

import (
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	m := models.Document{
		DocumentID:           d.DocumentID,
		TenantID:             d.TenantID,
		DocumentType:         string(d.Type),
		Number:               NullString(d.Number),
		Status:               string(d.Status),
		Version:              d.Version,
		PeriodID:             NullString(d.PeriodID),
		ReversalOfID:         NullString(d.ReversalOfID),
		CorrectsJournalID:    NullString(d.CorrectsJournalID),
		ReversedByID:         NullString(d.ReversedByID),
		TaxableTotal:         NullDecimal(d.TaxableTotal),
		CreatedBy:            d.CreatedByID,
		SubmittedBy:          NullString(d.SubmittedByID),
		ReviewedBy:           NullString(d.ReviewedByID),
		ApprovedBy:           NullString(d.ApprovedByID),
		PostedBy:             NullString(d.PostedByID),
		RejectedBy:           NullString(d.RejectedByID),
		ReturnedBy:           NullString(d.ReturnedByID),
		ReversalInitiatedBy:  NullString(d.ReversalInitiatedByID),
		ChecklistCompletedBy: d.ChecklistCompletedByIDs,
		CreatedAt:            d.CreatedAt,
		SubmittedAt:          d.SubmittedAt,
		ReviewedAt:           d.ReviewedAt,
		ApprovedAt:           d.ApprovedAt,
		PostedAt:             d.PostedAt,
		RejectedAt:           d.RejectedAt,
		ReturnedAt:           d.ReturnedAt,
		ReversedAt:           d.ReversedAt,
		LastUpdatedAt:        d.LastUpdatedAt,
		LastUpdatedBy:        d.LastUpdatedBy,
	}
	if m.ChecklistCompletedBy == nil {
		m.ChecklistCompletedBy = []string{}
	}
	m.ExercisedPermissions = make([]models.ExercisedPermission, len(d.ExercisedPermissions))
	for i, p := range d.ExercisedPermissions {
		m.ExercisedPermissions[i] = models.ExercisedPermission{Permission: p.Permission, UserID: p.UserID}
	}
	return m
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	d := domain.Document{
		DocumentID:        m.DocumentID,
		TenantID:          m.TenantID,
		Type:              domain.DocumentType(m.DocumentType),
		Number:            FromNullString(m.Number),
		Status:            domain.DocumentStatus(m.Status),
		Version:           m.Version,
		PeriodID:          FromNullString(m.PeriodID),
		ReversalOfID:      FromNullString(m.ReversalOfID),
		CorrectsJournalID: FromNullString(m.CorrectsJournalID),
		ReversedByID:      FromNullString(m.ReversedByID),
		TaxableTotal:      FromNullDecimal(m.TaxableTotal),
		ActorTrail: domain.ActorTrail{
			CreatedByID:           m.CreatedBy,
			SubmittedByID:         FromNullString(m.SubmittedBy),
			ReviewedByID:          FromNullString(m.ReviewedBy),
			ApprovedByID:          FromNullString(m.ApprovedBy),
			PostedByID:            FromNullString(m.PostedBy),
			RejectedByID:          FromNullString(m.RejectedBy),
			ReturnedByID:          FromNullString(m.ReturnedBy),
			ReversalInitiatedByID: FromNullString(m.ReversalInitiatedBy),
		},
		ChecklistCompletedByIDs: m.ChecklistCompletedBy,
		CreatedAt:               m.CreatedAt,
		SubmittedAt:             m.SubmittedAt,
		ReviewedAt:              m.ReviewedAt,
		ApprovedAt:              m.ApprovedAt,
		PostedAt:                m.PostedAt,
		RejectedAt:              m.RejectedAt,
		ReturnedAt:              m.ReturnedAt,
		ReversedAt:              m.ReversedAt,
		LastUpdatedAt:           m.LastUpdatedAt,
		LastUpdatedBy:           m.LastUpdatedBy,
	}
	if len(m.ExercisedPermissions) > 0 {
		d.ExercisedPermissions = make([]domain.ExercisedPermission, len(m.ExercisedPermissions))
		for i, p := range m.ExercisedPermissions {
			d.ExercisedPermissions[i] = domain.ExercisedPermission{Permission: p.Permission, UserID: p.UserID}
		}
	}
	return d
}

// ToModelDocumentLine converts a journal line of a document or generated journal.
func ToModelDocumentLine(ownerID string, lineNo int, l domain.JournalLine) models.DocumentLine {
	return models.DocumentLine{
		LineID:        l.LineID,
		DocumentID:    ownerID,
		LineNo:        lineNo,
		AccountID:     l.AccountID,
		Debit:         l.Debit,
		Credit:        l.Credit,
		LegalEntityID: NullString(l.LegalEntityID),
		DepartmentID:  NullString(l.DepartmentID),
		ProjectID:     NullString(l.ProjectID),
		FundID:        NullString(l.FundID),
		Memo:          NullString(l.Memo),
	}
}

// ToDomainJournalLine converts a model DocumentLine to a domain JournalLine
func ToDomainJournalLine(m models.DocumentLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:        m.LineID,
		AccountID:     m.AccountID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		LegalEntityID: FromNullString(m.LegalEntityID),
		DepartmentID:  FromNullString(m.DepartmentID),
		ProjectID:     FromNullString(m.ProjectID),
		FundID:        FromNullString(m.FundID),
		Memo:          FromNullString(m.Memo),
	}
}

// ToDomainTaxLine converts a model TaxLine to a domain TaxLine
func ToDomainTaxLine(m models.TaxLine) domain.TaxLine {
	return domain.TaxLine{
		TaxLineID:     m.TaxLineID,
		SourceType:    domain.TaxSourceType(m.SourceType),
		SourceID:      m.SourceID,
		TaxRateID:     m.TaxRateID,
		TaxableAmount: m.TaxableAmount,
		TaxAmount:     m.TaxAmount,
	}
}

// ToModelGeneratedJournal converts a domain GeneratedJournal header.
func ToModelGeneratedJournal(j domain.GeneratedJournal) models.GeneratedJournal {
	return models.GeneratedJournal{
		JournalID:        j.JournalID,
		TenantID:         j.TenantID,
		SourceDocumentID: j.SourceDocumentID,
		ReversalOfID:     NullString(j.ReversalOfID),
		PeriodID:         NullString(j.PeriodID),
		PostedAt:         j.PostedAt,
		PostedBy:         j.PostedByID,
		TotalAmount:      j.TotalAmount,
	}
}
