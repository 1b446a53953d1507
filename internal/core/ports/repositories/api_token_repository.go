package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// APITokenRepository defines the interface for API token data access operations
type APITokenRepository interface {
	// Create persists a new API token
	Create(ctx context.Context, token *domain.APIToken) error

	// FindByID retrieves an active API token by its ID
	FindByID(ctx context.Context, id string) (*domain.APIToken, error)

	// FindActiveByTenant retrieves the active tokens of a user within a tenant
	FindActiveByTenant(ctx context.Context, tenantID, userID string) ([]domain.APIToken, error)

	// Revoke soft-deletes a token
	Revoke(ctx context.Context, id string) error

	// Touch records a successful use of the token
	Touch(ctx context.Context, id string, usedAt time.Time) error
}
