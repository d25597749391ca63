package models

import "time"

// Session states. Editing and reviewing sessions live in the cache;
// submitted is terminal and the session is deleted on reaching it.
const (
	SessionEditing   = "editing"
	SessionReviewing = "reviewing"
	SessionSubmitted = "submitted"
)

// RequestSession holds the full context of an in-progress request
// between initiation and confirmation. Stored as JSON in Redis with a
// TTL; each session is owned by exactly one client.
type RequestSession struct {
	SessionID       string                `json:"sessionId"`
	State           string                `json:"state"`
	Selection       SelectionState        `json:"selection"`
	Catalog         []Offering            `json:"catalog"`
	Bundles         []Bundle              `json:"bundles,omitempty"`
	AppliedBundle   string                `json:"appliedBundleId,omitempty"`
	Pricing         PricingSummary        `json:"pricing"`
	Snapshot        *ConfirmationSnapshot `json:"snapshot,omitempty"`
	CatalogDegraded bool                  `json:"catalogDegraded,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}
