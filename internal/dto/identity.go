package dto

import "encoding/json"

// IdentityRequest carries an arbitrary parameter object to identify.
// Params stays raw so numbers reach canonicalization with every digit intact.
type IdentityRequest struct {
	Params json.RawMessage `json:"params" binding:"required" swaggertype:"object"`
}

// IdentityResponse is the deterministic identity of a parameter object.
type IdentityResponse struct {
	EntityID        string `json:"entityId"`
	CanonicalString string `json:"canonicalString"`
	Hash            string `json:"hash"`
	// FirstSeen is false when the same identity was already processed for the tenant.
	FirstSeen bool `json:"firstSeen"`
}
