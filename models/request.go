package models

import "time"

// RequestRecord is the persisted form of a confirmed request. Booking
// records land in the "bookings" collection, rental records in
// "equipment_rentals".
type RequestRecord struct {
	ID            string         `bson:"id" json:"id"`
	FlowType      string         `bson:"flow_type" json:"flowType"`
	Category      string         `bson:"category,omitempty" json:"category,omitempty"`
	OfferingIDs   []string       `bson:"offering_ids" json:"offeringIds"`
	OfferingNames []string       `bson:"offering_names" json:"offeringNames"`
	Contact       ContactInfo    `bson:"contact" json:"contact"`
	StartDate     string         `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate       string         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	StartTime     string         `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime       string         `bson:"end_time,omitempty" json:"endTime,omitempty"`
	PartySize     int            `bson:"party_size,omitempty" json:"partySize,omitempty"`
	DurationDays  int            `bson:"duration_days,omitempty" json:"durationDays,omitempty"`
	Notes         string         `bson:"notes,omitempty" json:"notes,omitempty"`
	Pricing       PricingSummary `bson:"pricing" json:"pricing"`
	Status        string         `bson:"status" json:"status"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
}

// RequestConfirmationResponse is returned after a successful Confirm.
type RequestConfirmationResponse struct {
	RequestID    string         `json:"requestId"`
	FlowType     string         `json:"flowType"`
	Status       string         `json:"status"`
	Confirmation string         `json:"confirmation"`
	EmailSent    bool           `json:"emailSent"`
	Warning      string         `json:"warning,omitempty"`
	Pricing      PricingSummary `json:"pricing"`
	CreatedAt    time.Time      `json:"createdAt"`
}
