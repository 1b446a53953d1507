package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
)

type identityService struct {
	BaseService
	store portsrepo.IdempotencyStore
}

// NewIdentityService creates the identity service. A nil store reports every
// identity as first seen.
func NewIdentityService(store portsrepo.IdempotencyStore) portssvc.IdentitySvc {
	return &identityService{store: store}
}

var _ portssvc.IdentitySvc = (*identityService)(nil)

// IdentityKey is the idempotency-store key of an identity hash within a tenant.
func IdentityKey(tenantID, hash string) string {
	return "identity:" + tenantID + ":" + hash
}

// BuildIdentity implements portssvc.IdentitySvc
func (s *identityService) BuildIdentity(ctx context.Context, tenantID string, params any) (*governance.DeterministicID, bool, error) {
	id, err := governance.BuildDeterministicID(params)
	if err != nil {
		return nil, false, err
	}
	if s.store == nil {
		return &id, true, nil
	}

	firstSeen, err := s.store.MarkProcessed(ctx, IdentityKey(tenantID, id.Hash))
	if err != nil {
		// The identity stays deterministic; only duplicate detection degrades.
		s.LogWarn(ctx, "Idempotency store unavailable",
			slog.String("error", err.Error()),
			slog.String("entity_id", id.EntityID))
		return &id, true, nil
	}
	s.LogDebug(ctx, "Identity built", slog.String("entity_id", id.EntityID), slog.Bool("first_seen", firstSeen))
	return &id, firstSeen, nil
}
