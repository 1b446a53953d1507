package governance

import (
	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
)

// RequirePermission fails with an AccessDeniedError unless the actor holds code.
func RequirePermission(actor domain.Actor, code string) error {
	if actor.Permissions.Has(code) {
		return nil
	}
	return &apperrors.AccessDeniedError{ActorID: actor.UserID, MissingPermission: code}
}

// RequireAnyPermission fails with an AccessDeniedError unless the actor holds at
// least one of codes. An empty list always denies.
func RequireAnyPermission(actor domain.Actor, codes ...string) error {
	if len(codes) > 0 && actor.Permissions.HasAny(codes...) {
		return nil
	}
	return &apperrors.AccessDeniedError{
		ActorID:      actor.UserID,
		MissingAnyOf: append([]string{}, codes...),
	}
}

// requireActionPermission applies the single or any-of form depending on how
// many codes the document policy lists for the action.
func requireActionPermission(actor domain.Actor, codes []string) error {
	if len(codes) == 1 {
		return RequirePermission(actor, codes[0])
	}
	return RequireAnyPermission(actor, codes...)
}
