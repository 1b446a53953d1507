package domain

import "time"

// AuditKind classifies what produced an audit record.
type AuditKind string

const (
	AuditPermission AuditKind = "PERMISSION"
	AuditSoD        AuditKind = "SOD"
	AuditPeriod     AuditKind = "PERIOD"
	AuditLedger     AuditKind = "LEDGER"
	AuditTax        AuditKind = "TAX"
	AuditLifecycle  AuditKind = "LIFECYCLE"
)

// AuditOutcome is the decision recorded.
type AuditOutcome string

const (
	OutcomeAllowed AuditOutcome = "ALLOWED"
	OutcomeDenied  AuditOutcome = "DENIED"
)

// AuditRecord is a structured compliance record of a governance decision.
// CorrelationID is the deterministic identity of the request so that repeated
// identical requests do not produce duplicate rows.
type AuditRecord struct {
	RecordID      string         `json:"recordID"`
	TenantID      string         `json:"tenantID"`
	CorrelationID string         `json:"correlationID"`
	Kind          AuditKind      `json:"kind"`
	Outcome       AuditOutcome   `json:"outcome"`
	Action        Action         `json:"action"`
	DocumentID    string         `json:"documentID"`
	DocumentType  DocumentType   `json:"documentType"`
	ActorID       string         `json:"actorID"`
	RuleCode      string         `json:"ruleCode,omitempty"`
	Reason        string         `json:"reason,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// AuditFilter narrows an audit-record listing.
type AuditFilter struct {
	TenantID   string
	DocumentID string
	ActorID    string
	Kind       AuditKind
	Outcome    AuditOutcome
	Limit      int
	NextToken  *string
}
