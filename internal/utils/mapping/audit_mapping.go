package mapping

import (
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to a model AuditRecord
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	details := d.Details
	if details == nil {
		details = map[string]any{}
	}
	return models.AuditRecord{
		RecordID:      d.RecordID,
		TenantID:      d.TenantID,
		CorrelationID: d.CorrelationID,
		Kind:          string(d.Kind),
		Outcome:       string(d.Outcome),
		Action:        string(d.Action),
		DocumentID:    d.DocumentID,
		DocumentType:  string(d.DocumentType),
		ActorID:       d.ActorID,
		RuleCode:      d.RuleCode,
		Reason:        d.Reason,
		Details:       details,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainAuditRecord converts a model AuditRecord to a domain AuditRecord
func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		RecordID:      m.RecordID,
		TenantID:      m.TenantID,
		CorrelationID: m.CorrelationID,
		Kind:          domain.AuditKind(m.Kind),
		Outcome:       domain.AuditOutcome(m.Outcome),
		Action:        domain.Action(m.Action),
		DocumentID:    m.DocumentID,
		DocumentType:  domain.DocumentType(m.DocumentType),
		ActorID:       m.ActorID,
		RuleCode:      m.RuleCode,
		Reason:        m.Reason,
		Details:       m.Details,
		CreatedAt:     m.CreatedAt,
	}
}
