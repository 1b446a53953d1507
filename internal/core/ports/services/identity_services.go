package services

import (
	"context"

	"github.com/SscSPs/backoffice_governance/internal/core/governance"
)

// IdentitySvc derives deterministic identities for report and audit parameters.
type IdentitySvc interface {
	// BuildIdentity returns the identity of params and whether it is seen for
	// the first time within the tenant.
	BuildIdentity(ctx context.Context, tenantID string, params any) (*governance.DeterministicID, bool, error)
}
