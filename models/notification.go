package models

// EmailPayload is the unit of work for queued email tasks (retries and
// scheduled reminders).
type EmailPayload struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	RequestID string `json:"requestId,omitempty"`
}
