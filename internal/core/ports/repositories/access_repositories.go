package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// ActorReader resolves an authenticated user to its permission snapshot within a tenant.
type ActorReader interface {
	// FindActor returns apperrors.ErrNotFound when the user is not a member of the tenant.
	FindActor(ctx context.Context, tenantID, userID string) (*domain.Actor, error)
}

// TenantPolicyReader loads a tenant's governance configuration.
type TenantPolicyReader interface {
	// FindTenantPolicy returns the default policy for tenants without stored configuration.
	FindTenantPolicy(ctx context.Context, tenantID string) (*domain.TenantPolicy, error)
}
