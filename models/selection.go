package models

// Flow types supported by the request engine. The flow decides which
// catalog collections are read and which collection the final request
// record lands in.
const (
	FlowBooking = "booking"
	FlowRental  = "rental"
)

// ContactInfo holds the requester's contact fields. Validated for
// non-emptiness only at staging time, never on write.
type ContactInfo struct {
	Name             string `bson:"name" json:"name"`
	Phone            string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email            string `bson:"email" json:"email"`
	PreferredChannel string `bson:"preferred_channel,omitempty" json:"preferredChannel,omitempty"`
}

// SelectionState is the mutable, session-owned selection. It lives only
// in the session cache and is discarded on submission or abandonment;
// it is never partially persisted.
type SelectionState struct {
	FlowType          string      `json:"flowType"`
	Category          string      `json:"category,omitempty"`
	SelectedOfferings []string    `json:"selectedOfferings"`
	Contact           ContactInfo `json:"contact"`
	StartDate         string      `json:"startDate,omitempty"` // "YYYY-MM-DD"
	EndDate           string      `json:"endDate,omitempty"`
	StartTime         string      `json:"startTime,omitempty"`
	EndTime           string      `json:"endTime,omitempty"`
	PartySize         int         `json:"partySize,omitempty"`
	Notes             string      `json:"notes,omitempty"`
}

// RequestDetailsInput is a partial, typed detail update. Nil fields are
// left unchanged; non-nil fields overwrite, including with empty values.
type RequestDetailsInput struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	PreferredChannel *string `json:"preferredChannel"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	StartTime        *string `json:"startTime"`
	EndTime          *string `json:"endTime"`
	PartySize        *int    `json:"partySize"`
	Notes            *string `json:"notes"`
}
