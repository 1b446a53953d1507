package pgsql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/models"
	"github.com/SscSPs/backoffice_governance/internal/utils/mapping"
	"github.com/SscSPs/backoffice_governance/internal/utils/pagination"
)

const (
	auditRecordsTable = "audit_records"
	maxAuditPageSize  = 100
)

var auditRecordColumns = []string{
	"record_id", "tenant_id", "correlation_id", "kind", "outcome", "action",
	"document_id", "document_type", "actor_id", "rule_code", "reason", "details", "created_at",
}

// PgxAuditRepository stores and lists governance audit records.
type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(db DB) *PgxAuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// SaveAuditRecord implements portsrepo.AuditRepository
func (r *PgxAuditRepository) SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	query, args, err := psql.
		Insert(auditRecordsTable).
		Columns(auditRecordColumns...).
		Values(m.RecordID, m.TenantID, m.CorrelationID, m.Kind, m.Outcome, m.Action,
			m.DocumentID, m.DocumentType, m.ActorID, m.RuleCode, m.Reason, m.Details, m.CreatedAt).
		Suffix("ON CONFLICT (tenant_id, correlation_id, kind, outcome) DO NOTHING").
		ToSql()
	if err != nil {
		return apperrors.NewAppError(500, "failed to build audit insert", err)
	}

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return apperrors.NewAppError(500, "failed to save audit record "+m.CorrelationID, err)
	}
	return nil
}

// ListAuditRecords implements portsrepo.AuditRepository. Records are returned
// newest first and paged by a (created_at, record_id) keyset cursor.
func (r *PgxAuditRepository) ListAuditRecords(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, *string, error) {
	limit := filter.Limit
	if limit <= 0 || limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	where := squirrel.Eq{"tenant_id": filter.TenantID}
	if filter.DocumentID != "" {
		where["document_id"] = filter.DocumentID
	}
	if filter.ActorID != "" {
		where["actor_id"] = filter.ActorID
	}
	if filter.Kind != "" {
		where["kind"] = string(filter.Kind)
	}
	if filter.Outcome != "" {
		where["outcome"] = string(filter.Outcome)
	}

	builder := psql.
		Select(auditRecordColumns...).
		From(auditRecordsTable).
		Where(where)

	if filter.NextToken != nil && *filter.NextToken != "" {
		createdAt, recordID, err := pagination.DecodeCursor(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		builder = builder.Where(squirrel.Expr("(created_at, record_id) < (?, ?)", createdAt, recordID))
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "record_id DESC").
		Limit(uint64(limit + 1)).
		ToSql()
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to build audit list query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list audit records", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0, limit)
	for rows.Next() {
		var m models.AuditRecord
		if err := rows.Scan(
			&m.RecordID,
			&m.TenantID,
			&m.CorrelationID,
			&m.Kind,
			&m.Outcome,
			&m.Action,
			&m.DocumentID,
			&m.DocumentType,
			&m.ActorID,
			&m.RuleCode,
			&m.Reason,
			&m.Details,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan audit record", err)
		}
		records = append(records, mapping.ToDomainAuditRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate audit records", err)
	}

	var nextToken *string
	if len(records) > limit {
		records = records[:limit]
		last := records[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.RecordID)
		nextToken = &token
	}
	return records, nextToken, nil
}
