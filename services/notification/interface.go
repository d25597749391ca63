package notification

import "context"

// EmailService sends transactional email through the external
// collaborator. Send returns the provider's message ID on success; a
// rejected or failed send comes back as an error, and the caller
// decides whether that is fatal for its flow.
type EmailService interface {
	Send(ctx context.Context, recipient, subject, body string) (string, error)
}
