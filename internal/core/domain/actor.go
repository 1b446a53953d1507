package domain

import "sort"

// PermissionSet is a read-only snapshot of an actor's permission codes.
// Codes are case-sensitive and namespaced, e.g. AR_INVOICE_POST.
type PermissionSet struct {
	codes map[string]struct{}
}

// NewPermissionSet builds a set from the given codes. Empty codes are ignored.
func NewPermissionSet(codes ...string) PermissionSet {
	set := PermissionSet{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		if c == "" {
			continue
		}
		set.codes[c] = struct{}{}
	}
	return set
}

// Has reports whether code is in the set.
func (p PermissionSet) Has(code string) bool {
	_, ok := p.codes[code]
	return ok
}

// HasAny reports whether at least one of codes is in the set.
func (p PermissionSet) HasAny(codes ...string) bool {
	for _, c := range codes {
		if p.Has(c) {
			return true
		}
	}
	return false
}

// Len returns the number of codes held.
func (p PermissionSet) Len() int {
	return len(p.codes)
}

// Codes returns the held codes sorted, for logging and serialization.
func (p PermissionSet) Codes() []string {
	out := make([]string, 0, len(p.codes))
	for c := range p.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Actor is an authenticated identity resolved for one request.
type Actor struct {
	UserID      string        `json:"userID"`
	TenantID    string        `json:"tenantID"`
	Name        string        `json:"name"`
	Permissions PermissionSet `json:"-"`
}
