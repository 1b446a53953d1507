package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// AuditRepository stores governance decisions for compliance review.
type AuditRepository interface {
	// SaveAuditRecord is idempotent per (tenant, correlation id, kind, outcome).
	SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error
	ListAuditRecords(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, *string, error)
}

// AuditPublisher streams audit records to downstream compliance consumers.
type AuditPublisher interface {
	Publish(ctx context.Context, record domain.AuditRecord) error
	Close() error
}

// IdempotencyStore remembers deterministic ids that were already processed.
type IdempotencyStore interface {
	// MarkProcessed returns true if the key was newly marked, false if it already existed.
	MarkProcessed(ctx context.Context, key string) (bool, error)
	IsProcessed(ctx context.Context, key string) (bool, error)
	Close() error
}
