package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studiohub/models"

	"go.uber.org/zap"
)

// Confirm finalizes a staged request. Persistence must succeed before
// the flow reaches submitted; on a storage failure the session keeps
// its snapshot and stays in reviewing so the user can retry without
// re-entering anything. A failed confirmation email is recorded as a
// non-fatal warning and queued for retry; the request exists either
// way.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string) (*models.RequestConfirmationResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionReviewing || session.Snapshot == nil {
		return nil, NewIncompleteSelection("confirmation")
	}

	snapshot := session.Snapshot
	record := recordFromSnapshot(snapshot)

	requestID, err := s.RequestRepo.Create(ctx, record)
	if err != nil {
		s.Logger.Error("request persistence failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		return nil, NewSubmissionFailed(err)
	}

	response := &models.RequestConfirmationResponse{
		RequestID:    requestID,
		FlowType:     snapshot.FlowType,
		Status:       models.SessionSubmitted,
		Confirmation: "Request confirmed",
		EmailSent:    true,
		Pricing:      snapshot.Pricing,
		CreatedAt:    record.CreatedAt,
	}

	subject, body := confirmationEmail(snapshot, requestID)
	if _, err := s.Email.Send(ctx, snapshot.Contact.Email, subject, body); err != nil {
		s.Logger.Warn("confirmation email delivery failed",
			zap.String("requestId", requestID), zap.Error(err))
		response.EmailSent = false
		response.Warning = CodeEmailDeliveryFailed
		s.enqueueEmailRetry(snapshot, requestID, subject, body)
	}

	s.scheduleReminder(snapshot, requestID)

	// Terminal state: the session is discarded, not kept.
	s.Cache.Del(ctx, sessionKey(sessionID))
	return response, nil
}

func (s *DefaultSessionService) enqueueEmailRetry(snapshot *models.ConfirmationSnapshot, requestID, subject, body string) {
	if s.Tasks == nil {
		return
	}
	payload := models.EmailPayload{
		Recipient: snapshot.Contact.Email,
		Subject:   subject,
		Body:      body,
		RequestID: requestID,
	}
	if err := s.Tasks.EnqueueEmailRetry(payload); err != nil {
		s.Logger.Warn("failed to queue email retry",
			zap.String("requestId", requestID), zap.Error(err))
	}
}

// scheduleReminder queues a reminder email for the day before the
// request's start date, when one exists and is still in the future.
func (s *DefaultSessionService) scheduleReminder(snapshot *models.ConfirmationSnapshot, requestID string) {
	if s.Tasks == nil || snapshot.StartDate == "" {
		return
	}
	start, err := parseDate(snapshot.StartDate)
	if err != nil {
		return
	}
	fireAt := start.AddDate(0, 0, -1)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.EmailPayload{
		Recipient: snapshot.Contact.Email,
		Subject:   fmt.Sprintf("Reminder: your %s starts %s", flowNoun(snapshot.FlowType), snapshot.StartDate),
		Body: fmt.Sprintf("Hello %s,\n\nThis is a reminder that your %s (reference %s) starts on %s.\n\nStudioHub",
			snapshot.Contact.Name, flowNoun(snapshot.FlowType), requestID, snapshot.StartDate),
		RequestID: requestID,
	}
	if err := s.Tasks.ScheduleReminder(payload, fireAt); err != nil {
		s.Logger.Warn("failed to schedule reminder email",
			zap.String("requestId", requestID), zap.Error(err))
	}
}

func recordFromSnapshot(snapshot *models.ConfirmationSnapshot) *models.RequestRecord {
	names := make([]string, 0, len(snapshot.Offerings))
	ids := make([]string, 0, len(snapshot.Offerings))
	for _, o := range snapshot.Offerings {
		ids = append(ids, o.ID)
		names = append(names, o.Name)
	}

	return &models.RequestRecord{
		FlowType:      snapshot.FlowType,
		Category:      snapshot.Category,
		OfferingIDs:   ids,
		OfferingNames: names,
		Contact:       snapshot.Contact,
		StartDate:     snapshot.StartDate,
		EndDate:       snapshot.EndDate,
		StartTime:     snapshot.StartTime,
		EndTime:       snapshot.EndTime,
		PartySize:     snapshot.PartySize,
		DurationDays:  snapshot.DurationDays,
		Notes:         snapshot.Notes,
		Pricing:       snapshot.Pricing,
		Status:        "pending",
	}
}

// confirmationEmail builds the plain-text confirmation message. HTML
// templating belongs to the email provider, not this service.
func confirmationEmail(snapshot *models.ConfirmationSnapshot, requestID string) (subject, body string) {
	noun := flowNoun(snapshot.FlowType)
	subject = fmt.Sprintf("Your %s request is in (ref %s)", noun, requestID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", snapshot.Contact.Name)
	fmt.Fprintf(&b, "We received your %s request. Summary:\n\n", noun)
	for _, o := range snapshot.Offerings {
		fmt.Fprintf(&b, "  - %s: %s %d\n", o.Name, snapshot.Pricing.Currency, o.Price)
	}
	if snapshot.StartDate != "" {
		fmt.Fprintf(&b, "\nDates: %s to %s (%s)\n", snapshot.StartDate, orDash(snapshot.EndDate), snapshot.DurationText)
	}
	fmt.Fprintf(&b, "\nItem total: %s %d\n", snapshot.Pricing.Currency, snapshot.Pricing.ItemTotal)
	if snapshot.Pricing.DiscountPercent > 0 {
		fmt.Fprintf(&b, "After %d%% bundle discount: %s %d\n",
			snapshot.Pricing.DiscountPercent, snapshot.Pricing.Currency, snapshot.Pricing.DiscountedTotal)
	}
	if snapshot.Pricing.DepositTotal > 0 {
		fmt.Fprintf(&b, "Refundable deposit: %s %d\n", snapshot.Pricing.Currency, snapshot.Pricing.DepositTotal)
	}
	fmt.Fprintf(&b, "Grand total: %s %d\n", snapshot.Pricing.Currency, snapshot.Pricing.GrandTotal)
	fmt.Fprintf(&b, "\nWe will be in touch to confirm. Reference: %s\n\nStudioHub", requestID)

	return subject, b.String()
}

func flowNoun(flowType string) string {
	if flowType == models.FlowRental {
		return "equipment rental"
	}
	return "studio booking"
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
