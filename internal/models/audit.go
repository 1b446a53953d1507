package models

import "time"

// AuditRecord is an audit_records row.
type AuditRecord struct {
	RecordID      string         `db:"record_id"`
	TenantID      string         `db:"tenant_id"`
	CorrelationID string         `db:"correlation_id"`
	Kind          string         `db:"kind"`
	Outcome       string         `db:"outcome"`
	Action        string         `db:"action"`
	DocumentID    string         `db:"document_id"`
	DocumentType  string         `db:"document_type"`
	ActorID       string         `db:"actor_id"`
	RuleCode      string         `db:"rule_code"`
	Reason        string         `db:"reason"`
	Details       map[string]any `db:"details"` // jsonb
	CreatedAt     time.Time      `db:"created_at"`
}
