package services

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/dto"
)

// AuditRecorderSvc dispatches governance decisions to the audit sinks.
type AuditRecorderSvc interface {
	// Record never fails the caller; sink errors are logged.
	Record(ctx context.Context, record domain.AuditRecord)
	// Flush waits for records still being dispatched.
	Flush()
}

// AuditReaderSvc lists stored audit records.
type AuditReaderSvc interface {
	ListAuditRecords(ctx context.Context, tenantID string, params dto.ListAuditRecordsParams) (*dto.ListAuditRecordsResponse, error)
}

// AuditSvcFacade combines all audit service interfaces.
type AuditSvcFacade interface {
	AuditRecorderSvc
	AuditReaderSvc
}
