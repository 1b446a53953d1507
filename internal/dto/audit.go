package dto

import (
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// ListAuditRecordsParams defines query parameters for listing audit records.
type ListAuditRecordsParams struct {
	DocumentID string  `form:"documentId"`
	ActorID    string  `form:"actorId"`
	Kind       string  `form:"kind" binding:"omitempty,oneof=PERMISSION SOD PERIOD LEDGER TAX LIFECYCLE"`
	Outcome    string  `form:"outcome" binding:"omitempty,oneof=ALLOWED DENIED"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken  *string `form:"nextToken"`
}

// AuditRecordResponse is one audit record.
type AuditRecordResponse struct {
	RecordID      string         `json:"recordID"`
	CorrelationID string         `json:"correlationID"`
	Kind          string         `json:"kind"`
	Outcome       string         `json:"outcome"`
	Action        string         `json:"action"`
	DocumentID    string         `json:"documentID"`
	DocumentType  string         `json:"documentType"`
	ActorID       string         `json:"actorID"`
	RuleCode      string         `json:"ruleCode,omitempty"`
	Reason        string         `json:"reason,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// ListAuditRecordsResponse wraps a page of audit records.
type ListAuditRecordsResponse struct {
	Records   []AuditRecordResponse `json:"records"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToAuditFilter converts the query parameters for a tenant.
func (p ListAuditRecordsParams) ToAuditFilter(tenantID string) domain.AuditFilter {
	limit := p.Limit
	if limit == 0 {
		limit = 20
	}
	return domain.AuditFilter{
		TenantID:   tenantID,
		DocumentID: p.DocumentID,
		ActorID:    p.ActorID,
		Kind:       domain.AuditKind(p.Kind),
		Outcome:    domain.AuditOutcome(p.Outcome),
		Limit:      limit,
		NextToken:  p.NextToken,
	}
}

// ToListAuditRecordsResponse converts a page of domain records.
func ToListAuditRecordsResponse(records []domain.AuditRecord, nextToken *string) ListAuditRecordsResponse {
	out := make([]AuditRecordResponse, len(records))
	for i, r := range records {
		out[i] = AuditRecordResponse{
			RecordID:      r.RecordID,
			CorrelationID: r.CorrelationID,
			Kind:          string(r.Kind),
			Outcome:       string(r.Outcome),
			Action:        string(r.Action),
			DocumentID:    r.DocumentID,
			DocumentType:  string(r.DocumentType),
			ActorID:       r.ActorID,
			RuleCode:      r.RuleCode,
			Reason:        r.Reason,
			Details:       r.Details,
			CreatedAt:     r.CreatedAt,
		}
	}
	return ListAuditRecordsResponse{Records: out, NextToken: nextToken}
}
