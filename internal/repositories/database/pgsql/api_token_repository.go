package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_governance/internal/models"
	"github.com/SscSPs/backoffice_governance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new instance of PgxAPITokenRepository
func newPgxAPITokenRepository(db DB) *PgxAPITokenRepository {
	return &PgxAPITokenRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const (
	apiTokensTable = "api_tokens"

	selectAPITokenFields = `
		api_token_id, user_id, tenant_id, name, token_hash,
		last_used_at, expires_at, created_at, updated_at
	`

	insertAPITokenQuery = `
		INSERT INTO ` + apiTokensTable + ` (
			api_token_id, user_id, tenant_id, name, token_hash, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	findAPITokenByIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE api_token_id = $1 AND deleted_at IS NULL
	`

	findAPITokensByTenantQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE tenant_id = $1 AND user_id = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	touchAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET last_used_at = $2, updated_at = $2
		WHERE api_token_id = $1
	`

	revokeAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE api_token_id = $1 AND deleted_at IS NULL
	`
)

func scanAPIToken(row pgx.Row) (models.APIToken, error) {
	var m models.APIToken
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.TenantID,
		&m.Name,
		&m.TokenHash,
		&m.LastUsedAt,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// Create persists a new API token
func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}

	m := mapping.ToModelAPIToken(*token)
	_, err := r.Pool.Exec(ctx, insertAPITokenQuery,
		m.ID,
		m.UserID,
		m.TenantID,
		m.Name,
		m.TokenHash,
		m.ExpiresAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create api token", err)
	}
	return nil
}

// FindByID retrieves an active API token by its ID
func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	m, err := scanAPIToken(r.Pool.QueryRow(ctx, findAPITokenByIDQuery, id))
	if err != nil {
		return nil, notFound(err, "api token", id)
	}
	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}

// FindActiveByTenant retrieves the active tokens of a user within a tenant
func (r *PgxAPITokenRepository) FindActiveByTenant(ctx context.Context, tenantID, userID string) ([]domain.APIToken, error) {
	rows, err := r.Pool.Query(ctx, findAPITokensByTenantQuery, tenantID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list api tokens", err)
	}
	defer rows.Close()

	tokens := make([]domain.APIToken, 0)
	for rows.Next() {
		m, err := scanAPIToken(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan api token", err)
		}
		tokens = append(tokens, mapping.ToDomainAPIToken(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate api tokens", err)
	}
	return tokens, nil
}

// Revoke soft-deletes a token
func (r *PgxAPITokenRepository) Revoke(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, revokeAPITokenQuery, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to revoke api token", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "api token", id)
	}
	return nil
}

// Touch records a successful use of the token
func (r *PgxAPITokenRepository) Touch(ctx context.Context, id string, usedAt time.Time) error {
	if _, err := r.Pool.Exec(ctx, touchAPITokenQuery, id, usedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update api token usage", err)
	}
	return nil
}
