package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPEmailService talks to the transactional email collaborator: a
// single endpoint accepting {recipient, subject, body} and answering
// {success, id?, error?}.
type HTTPEmailService struct {
	Endpoint string
	APIKey   string
	From     string
	Client   *http.Client
	Logger   *zap.Logger
}

// NewHTTPEmailService builds the email client with a sane default
// timeout.
func NewHTTPEmailService(endpoint, apiKey, from string, logger *zap.Logger) *HTTPEmailService {
	return &HTTPEmailService{
		Endpoint: endpoint,
		APIKey:   apiKey,
		From:     from,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
	}
}

type emailRequest struct {
	Recipient string `json:"recipient"`
	From      string `json:"from,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

type emailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Send posts the message to the provider and returns its message ID.
func (s *HTTPEmailService) Send(ctx context.Context, recipient, subject, body string) (string, error) {
	if s.Endpoint == "" {
		return "", fmt.Errorf("email endpoint is not configured")
	}

	payload, err := json.Marshal(emailRequest{
		Recipient: recipient,
		From:      s.From,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	var result emailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode email response: %w", err)
	}
	if resp.StatusCode >= 300 || !result.Success {
		reason := result.Error
		if reason == "" {
			reason = resp.Status
		}
		return "", fmt.Errorf("email provider rejected message: %s", reason)
	}

	s.Logger.Debug("email accepted by provider",
		zap.String("recipient", recipient), zap.String("id", result.ID))
	return result.ID, nil
}
