package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/google/uuid"
)

// auditDispatchTimeout bounds how long one record may take to reach its sinks.
const auditDispatchTimeout = 5 * time.Second

// auditService writes audit records to the repository and the broker in the
// background so that a slow sink never delays a governance decision.
type auditService struct {
	BaseService
	repo      portsrepo.AuditRepository
	publisher portsrepo.AuditPublisher
	wg        sync.WaitGroup
}

// NewAuditService creates the audit service. publisher may be nil.
func NewAuditService(repo portsrepo.AuditRepository, publisher portsrepo.AuditPublisher) portssvc.AuditSvcFacade {
	return &auditService{repo: repo, publisher: publisher}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record implements portssvc.AuditRecorderSvc
func (s *auditService) Record(ctx context.Context, record domain.AuditRecord) {
	if record.RecordID == "" {
		record.RecordID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	// The request context is cancelled once the response is written.
	dispatchCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(dispatchCtx, auditDispatchTimeout)
		defer cancel()
		s.dispatch(ctx, record)
	}()
}

// Flush implements portssvc.AuditRecorderSvc
func (s *auditService) Flush() {
	s.wg.Wait()
}

func (s *auditService) dispatch(ctx context.Context, record domain.AuditRecord) {
	if s.repo != nil {
		if err := s.repo.SaveAuditRecord(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to save audit record",
				slog.String("record_id", record.RecordID),
				slog.String("correlation_id", record.CorrelationID))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to publish audit record",
				slog.String("record_id", record.RecordID),
				slog.String("correlation_id", record.CorrelationID))
		}
	}
}

// ListAuditRecords implements portssvc.AuditReaderSvc
func (s *auditService) ListAuditRecords(ctx context.Context, tenantID string, params dto.ListAuditRecordsParams) (*dto.ListAuditRecordsResponse, error) {
	records, nextToken, err := s.repo.ListAuditRecords(ctx, params.ToAuditFilter(tenantID))
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records", slog.String("tenant_id", tenantID))
		return nil, err
	}
	resp := dto.ToListAuditRecordsResponse(records, nextToken)
	return &resp, nil
}
