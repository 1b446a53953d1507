package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tags the concrete financial artifact behind a Document.
type DocumentType string

const (
	DocumentJournalEntry    DocumentType = "JOURNAL_ENTRY"
	DocumentCustomerInvoice DocumentType = "CUSTOMER_INVOICE"
	DocumentSupplierInvoice DocumentType = "SUPPLIER_INVOICE"
	DocumentFixedAsset      DocumentType = "FIXED_ASSET"
	DocumentPayment         DocumentType = "PAYMENT"
)

// IsValid checks if the type is a known DocumentType.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentJournalEntry, DocumentCustomerInvoice, DocumentSupplierInvoice,
		DocumentFixedAsset, DocumentPayment:
		return true
	}
	return false
}

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"
	StatusSubmitted DocumentStatus = "SUBMITTED"
	StatusApproved  DocumentStatus = "APPROVED"
	StatusPosted    DocumentStatus = "POSTED"
	StatusRejected  DocumentStatus = "REJECTED"
	StatusReversed  DocumentStatus = "REVERSED"
)

// IsValid checks if the status is a known DocumentStatus.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusPosted, StatusRejected, StatusReversed:
		return true
	}
	return false
}

// IsTerminal returns true when no further lifecycle action may start from s.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusReversed
}

// Action is a lifecycle action requested against a document.
type Action string

const (
	ActionCreate  Action = "CREATE"
	ActionSubmit  Action = "SUBMIT"
	ActionReview  Action = "REVIEW"
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
	ActionReturn  Action = "RETURN"
	ActionPost    Action = "POST"
	ActionReverse Action = "REVERSE"
)

// IsValid checks if the action is a known Action.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionSubmit, ActionReview, ActionApprove, ActionReject,
		ActionReturn, ActionPost, ActionReverse:
		return true
	}
	return false
}

// TrailField names one actor-stamp slot of a document's actor trail.
type TrailField string

const (
	TrailCreatedBy           TrailField = "createdBy"
	TrailSubmittedBy         TrailField = "submittedBy"
	TrailReviewedBy          TrailField = "reviewedBy"
	TrailApprovedBy          TrailField = "approvedBy"
	TrailPostedBy            TrailField = "postedBy"
	TrailRejectedBy          TrailField = "rejectedBy"
	TrailReturnedBy          TrailField = "returnedBy"
	TrailReversalInitiatedBy TrailField = "reversalInitiatedBy"
)

// TrailFieldFor maps an action to the trail slot it stamps.
func TrailFieldFor(a Action) (TrailField, bool) {
	switch a {
	case ActionCreate:
		return TrailCreatedBy, true
	case ActionSubmit:
		return TrailSubmittedBy, true
	case ActionReview:
		return TrailReviewedBy, true
	case ActionApprove:
		return TrailApprovedBy, true
	case ActionReject:
		return TrailRejectedBy, true
	case ActionReturn:
		return TrailReturnedBy, true
	case ActionPost:
		return TrailPostedBy, true
	case ActionReverse:
		return TrailReversalInitiatedBy, true
	}
	return "", false
}

// ActorTrail records who performed each lifecycle step. Empty means not performed.
type ActorTrail struct {
	CreatedByID           string `json:"createdByID"`
	SubmittedByID         string `json:"submittedByID,omitempty"`
	ReviewedByID          string `json:"reviewedByID,omitempty"`
	ApprovedByID          string `json:"approvedByID,omitempty"`
	PostedByID            string `json:"postedByID,omitempty"`
	RejectedByID          string `json:"rejectedByID,omitempty"`
	ReturnedByID          string `json:"returnedByID,omitempty"`
	ReversalInitiatedByID string `json:"reversalInitiatedByID,omitempty"`
}

// Get returns the actor id stamped in field.
func (t ActorTrail) Get(field TrailField) string {
	switch field {
	case TrailCreatedBy:
		return t.CreatedByID
	case TrailSubmittedBy:
		return t.SubmittedByID
	case TrailReviewedBy:
		return t.ReviewedByID
	case TrailApprovedBy:
		return t.ApprovedByID
	case TrailPostedBy:
		return t.PostedByID
	case TrailRejectedBy:
		return t.RejectedByID
	case TrailReturnedBy:
		return t.ReturnedByID
	case TrailReversalInitiatedBy:
		return t.ReversalInitiatedByID
	}
	return ""
}

// With returns a copy of the trail with field set to userID.
func (t ActorTrail) With(field TrailField, userID string) ActorTrail {
	switch field {
	case TrailCreatedBy:
		t.CreatedByID = userID
	case TrailSubmittedBy:
		t.SubmittedByID = userID
	case TrailReviewedBy:
		t.ReviewedByID = userID
	case TrailApprovedBy:
		t.ApprovedByID = userID
	case TrailPostedBy:
		t.PostedByID = userID
	case TrailRejectedBy:
		t.RejectedByID = userID
	case TrailReturnedBy:
		t.ReturnedByID = userID
	case TrailReversalInitiatedBy:
		t.ReversalInitiatedByID = userID
	}
	return t
}

// ExercisedPermission records that UserID exercised Permission on a document.
type ExercisedPermission struct {
	Permission string `json:"permission"`
	UserID     string `json:"userID"`
}

// Document is the generic financial artifact the lifecycle drives: a journal entry,
// a customer or supplier invoice, a fixed asset, or a payment. Only the status,
// period linkage and actor trail are inspected by the governance kernel.
type Document struct {
	DocumentID        string         `json:"documentID"`
	TenantID          string         `json:"tenantID"`
	Type              DocumentType   `json:"type"`
	Number            string         `json:"number,omitempty"`
	Status            DocumentStatus `json:"status"`
	Version           int64          `json:"version"`
	PeriodID          string         `json:"periodID,omitempty"`
	ReversalOfID      string         `json:"reversalOfID,omitempty"`
	CorrectsJournalID string         `json:"correctsJournalID,omitempty"`
	ReversedByID      string         `json:"reversedByID,omitempty"` // id of the reversal document
	// TaxableTotal is the document-level taxable base that DOCUMENT-sourced tax lines reconcile to.
	TaxableTotal *decimal.Decimal `json:"taxableTotal,omitempty"`
	ActorTrail
	ChecklistCompletedByIDs []string              `json:"checklistCompletedByIDs,omitempty"`
	ExercisedPermissions    []ExercisedPermission `json:"exercisedPermissions,omitempty"`
	CreatedAt               time.Time             `json:"createdAt"`
	SubmittedAt             *time.Time            `json:"submittedAt,omitempty"`
	ReviewedAt              *time.Time            `json:"reviewedAt,omitempty"`
	ApprovedAt              *time.Time            `json:"approvedAt,omitempty"`
	PostedAt                *time.Time            `json:"postedAt,omitempty"`
	RejectedAt              *time.Time            `json:"rejectedAt,omitempty"`
	ReturnedAt              *time.Time            `json:"returnedAt,omitempty"`
	ReversedAt              *time.Time            `json:"reversedAt,omitempty"`
	LastUpdatedAt           time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy           string                `json:"lastUpdatedBy"`
}

// Label renders a short human reference for messages.
func (d Document) Label() string {
	ref := d.Number
	if ref == "" {
		ref = d.DocumentID
	}
	return string(d.Type) + " " + ref
}

// IsReversal reports whether the document was created to reverse another one.
func (d Document) IsReversal() bool {
	return d.ReversalOfID != ""
}

// Clone returns a deep copy so the kernel never mutates a caller's snapshot.
func (d Document) Clone() Document {
	c := d
	if d.ChecklistCompletedByIDs != nil {
		c.ChecklistCompletedByIDs = append([]string(nil), d.ChecklistCompletedByIDs...)
	}
	if d.ExercisedPermissions != nil {
		c.ExercisedPermissions = append([]ExercisedPermission(nil), d.ExercisedPermissions...)
	}
	return c
}
