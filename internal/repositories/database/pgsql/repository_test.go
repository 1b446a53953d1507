package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestAccessRepository_FindActor(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "member found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"tenant_id", "user_id", "name", "permissions"}).
					AddRow("t1", "u1", "Ada", []string{"AR_INVOICE_POST", "GL_JOURNAL_APPROVE"})
				mock.ExpectQuery(`FROM tenant_members`).
					WithArgs("t1", "u1").
					WillReturnRows(rows)
			},
		},
		{
			name: "not a member",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM tenant_members`).
					WithArgs("t1", "u1").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := newPgxAccessRepository(mock, decimal.RequireFromString("0.01"))
			tt.setup(mock)

			actor, err := repo.FindActor(context.Background(), "t1", "u1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, actor)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "u1", actor.UserID)
				assert.True(t, actor.Permissions.Has("AR_INVOICE_POST"))
				assert.Equal(t, 2, actor.Permissions.Len())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccessRepository_FindTenantPolicy_DefaultsWhenUnconfigured(t *testing.T) {
	mock := newMockPool(t)
	tolerance := decimal.RequireFromString("0.05")
	repo := newPgxAccessRepository(mock, tolerance)

	mock.ExpectQuery(`FROM tenant_policies`).
		WithArgs("t1").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM sod_rules`).
		WithArgs("t1").
		WillReturnRows(pgxmock.NewRows([]string{
			"rule_code", "tenant_id", "permission_a", "permission_b", "description",
			"created_at", "created_by", "last_updated_at", "last_updated_by",
		}))

	policy, err := repo.FindTenantPolicy(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, policy.TaxTolerance.Equal(tolerance))
	assert.Equal(t, domain.DefaultTenantPolicy("t1").SeparationRules, policy.SeparationRules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_FindDocumentByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxDocumentRepository(mock)

	mock.ExpectQuery(`FROM documents`).
		WithArgs("t1", "doc-1").
		WillReturnError(pgx.ErrNoRows)

	doc, err := repo.FindDocumentByID(context.Background(), "t1", "doc-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_FindLockedTaxSources(t *testing.T) {
	t.Run("no sources skips the query", func(t *testing.T) {
		mock := newMockPool(t)
		repo := newPgxDocumentRepository(mock)

		locked, err := repo.FindLockedTaxSources(context.Background(), "t1", nil)
		require.NoError(t, err)
		assert.Empty(t, locked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns locked subset", func(t *testing.T) {
		mock := newMockPool(t)
		repo := newPgxDocumentRepository(mock)

		mock.ExpectQuery(`FROM tax_source_locks`).
			WithArgs("t1", []string{"line-1", "line-2"}).
			WillReturnRows(pgxmock.NewRows([]string{"source_id"}).AddRow("line-2"))

		locked, err := repo.FindLockedTaxSources(context.Background(), "t1", []string{"line-1", "line-2"})
		require.NoError(t, err)
		assert.Len(t, locked, 1)
		assert.Contains(t, locked, "line-2")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDocumentRepository_SaveTransition(t *testing.T) {
	now := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)
	doc := domain.Document{
		DocumentID:    "doc-1",
		TenantID:      "t1",
		Type:          domain.DocumentJournalEntry,
		Status:        domain.StatusSubmitted,
		Version:       2,
		ActorTrail:    domain.ActorTrail{CreatedByID: "u1", SubmittedByID: "u1"},
		CreatedAt:     now,
		SubmittedAt:   &now,
		LastUpdatedAt: now,
		LastUpdatedBy: "u1",
	}

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "updates the document and commits",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE documents SET`).
					WithArgs(append([]any{"doc-1", int64(1)}, anyArgs(21)...)...).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "stale version rolls back",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE documents SET`).
					WithArgs(append([]any{"doc-1", int64(1)}, anyArgs(21)...)...).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrConcurrencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := newPgxDocumentRepository(mock)
			tt.setup(mock)

			err := repo.SaveTransition(context.Background(), portsrepo.TransitionWrite{
				Document:        doc,
				ExpectedVersion: 1,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogRepository_FindAccountsByIDs_Empty(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxCatalogRepository(mock)

	accounts, err := repo.FindAccountsByIDs(context.Background(), "t1", nil)
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindTaxRatesByIDs(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxCatalogRepository(mock)

	mock.ExpectQuery(`SELECT tax_rate_id, tenant_id, code, rate FROM tax_rates WHERE`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"tax_rate_id", "tenant_id", "code", "rate"}).
			AddRow("vat16", "t1", "VAT16", "0.16"))

	rates, err := repo.FindTaxRatesByIDs(context.Background(), "t1", []string{"vat16"})
	require.NoError(t, err)
	require.Contains(t, rates, "vat16")
	assert.True(t, rates["vat16"].Rate.Equal(decimal.RequireFromString("0.16")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_SaveAuditRecord(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxAuditRepository(mock)

	mock.ExpectExec(`INSERT INTO audit_records .* ON CONFLICT \(tenant_id, correlation_id, kind, outcome\) DO NOTHING`).
		WithArgs(anyArgs(len(auditRecordColumns))...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveAuditRecord(context.Background(), domain.AuditRecord{
		RecordID:      "r1",
		TenantID:      "t1",
		CorrelationID: "c1",
		Kind:          domain.AuditSoD,
		Outcome:       domain.OutcomeDenied,
		Action:        domain.ActionApprove,
		DocumentID:    "doc-1",
		ActorID:       "u1",
		RuleCode:      "CREATOR_APPROVER",
		CreatedAt:     time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListAuditRecords_Paginates(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxAuditRepository(mock)

	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := pgxmock.NewRows(auditRecordColumns)
	for i, id := range []string{"r3", "r2", "r1"} {
		rows.AddRow(id, "t1", "c-"+id, "LIFECYCLE", "ALLOWED", "SUBMIT",
			"doc-1", "JOURNAL_ENTRY", "u1", "", "", map[string]any{}, t0.Add(-time.Duration(i)*time.Minute))
	}
	mock.ExpectQuery(`FROM audit_records WHERE tenant_id = \$1 ORDER BY created_at DESC, record_id DESC LIMIT 3`).
		WithArgs("t1").
		WillReturnRows(rows)

	records, next, err := repo.ListAuditRecords(context.Background(), domain.AuditFilter{TenantID: "t1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r3", records[0].RecordID)
	require.NotNil(t, next)

	createdAt, recordID, err := pagination.DecodeCursor(*next)
	require.NoError(t, err)
	assert.Equal(t, "r2", recordID)
	assert.True(t, createdAt.Equal(t0.Add(-time.Minute)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListAuditRecords_BadToken(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxAuditRepository(mock)
	bad := "%%%"

	_, _, err := repo.ListAuditRecords(context.Background(), domain.AuditFilter{TenantID: "t1", NextToken: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
