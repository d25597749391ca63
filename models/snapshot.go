package models

import "time"

// ConfirmationSnapshot freezes the selection, the resolved offering
// details, and the pricing summary the instant the user asks for
// review. It is a deep copy: later mutations of the live selection
// never show through it.
type ConfirmationSnapshot struct {
	SnapshotID    string         `json:"snapshotId"`
	FlowType      string         `json:"flowType"`
	Category      string         `json:"category,omitempty"`
	Offerings     []Offering     `json:"offerings"`
	Contact       ContactInfo    `json:"contact"`
	StartDate     string         `json:"startDate,omitempty"`
	EndDate       string         `json:"endDate,omitempty"`
	StartTime     string         `json:"startTime,omitempty"`
	EndTime       string         `json:"endTime,omitempty"`
	PartySize     int            `json:"partySize,omitempty"`
	DurationDays  int            `json:"durationDays,omitempty"`
	DurationText  string         `json:"durationText"`
	Notes         string         `json:"notes,omitempty"`
	AppliedBundle string         `json:"appliedBundleId,omitempty"`
	Pricing       PricingSummary `json:"pricing"`
	CreatedAt     time.Time      `json:"createdAt"`
}
