package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// APITokenSvc defines operations for API token management
type APITokenSvc interface {
	// CreateToken generates a new API token for the user within a tenant.
	// Returns the plaintext token (only shown once) and the token details
	CreateToken(ctx context.Context, tenantID, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error)

	// ListTokens returns the active API tokens of a user
	ListTokens(ctx context.Context, tenantID, userID string) ([]domain.APIToken, error)

	// RevokeToken revokes a specific API token of a user
	RevokeToken(ctx context.Context, tenantID, userID, tokenID string) error

	// ValidateToken checks if a token is valid and returns it.
	// Updates the last used timestamp if the token is valid
	ValidateToken(ctx context.Context, tokenString string) (*domain.APIToken, error)
}
