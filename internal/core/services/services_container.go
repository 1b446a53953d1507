package services

import (
	"github.com/SscSPs/backoffice_governance/internal/core/governance"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/platform/config"
)

// Sinks groups the optional infrastructure the services publish to.
type Sinks struct {
	Publisher   portsrepo.AuditPublisher
	Idempotency portsrepo.IdempotencyStore
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sinks Sinks) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first since governance decisions are recorded through it
	container.Audit = NewAuditService(repos.AuditRepo, sinks.Publisher)

	opts := []GovernanceServiceOption{WithAuditRecorder(container.Audit)}
	if cfg != nil && cfg.RequireOpenPeriodOnCreate {
		opts = append(opts, WithKernel(governance.NewKernel(governance.WithPolicies(openPeriodOnCreate()...))))
	}
	container.Governance = NewGovernanceService(repos, opts...)
	container.Identity = NewIdentityService(sinks.Idempotency)
	container.APIToken = NewAPITokenService(repos.APITokenRepo)

	return container
}

// openPeriodOnCreate returns every default policy with creation gated on an open period.
func openPeriodOnCreate() []governance.DocumentPolicy {
	defaults := governance.DefaultPolicies()
	policies := make([]governance.DocumentPolicy, 0, len(defaults))
	for _, p := range defaults {
		p.RequireOpenPeriodOnCreate = true
		policies = append(policies, p)
	}
	return policies
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.GovernanceSvcFacade = (*governanceService)(nil)
	_ portssvc.AuditSvcFacade      = (*auditService)(nil)
	_ portssvc.IdentitySvc         = (*identityService)(nil)
	_ portssvc.APITokenSvc         = (*apiTokenService)(nil)
)
