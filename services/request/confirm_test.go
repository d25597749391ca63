package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiohub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmRejectsUnstagedSession(t *testing.T) {
	svc, requests, email, _ := newTestService(t, studioCatalog())
	ctx := context.Background()
	sessionID := readySession(t, svc)

	_, err := svc.Confirm(ctx, sessionID)
	fe, ok := AsFlowError(err)
	require.True(t, ok)
	assert.Equal(t, CodeIncompleteSelection, fe.Code)

	// Nothing was persisted and no email went out.
	assert.Empty(t, requests.created)
	assert.Empty(t, email.sent)
}

func TestConfirmPersistsAndEmails(t *testing.T) {
	svc, requests, email, _ := newTestService(t, studioCatalog())
	ctx := context.Background()
	sessionID := readySession(t, svc)

	_, err := svc.Stage(ctx, sessionID)
	require.NoError(t, err)

	response, err := svc.Confirm(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, "req-0001", response.RequestID)
	assert.Equal(t, models.SessionSubmitted, response.Status)
	assert.True(t, response.EmailSent)
	assert.Empty(t, response.Warning)
	assert.Equal(t, int64(50000), response.Pricing.GrandTotal)

	require.Len(t, requests.created, 1)
	record := requests.created[0]
	assert.Equal(t, models.FlowBooking, record.FlowType)
	assert.Equal(t, []string{"studio-a"}, record.OfferingIDs)
	assert.Equal(t, "pending", record.Status)
	assert.Equal(t, 2, record.DurationDays)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "ada@example.com", email.sent[0].recipient)
	assert.Contains(t, email.sent[0].body, "Studio A")
	assert.Contains(t, email.sent[0].body, "req-0001")

	// Submitted is terminal; the session is gone.
	_, err = svc.Get(ctx, sessionID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestConfirmPersistenceFailureKeepsSession(t *testing.T) {
	svc, requests, email, _ := newTestService(t, studioCatalog())
	requests.err = errors.New("mongo down")
	ctx := context.Background()
	sessionID := readySession(t, svc)

	_, err := svc.Stage(ctx, sessionID)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, sessionID)
	fe, ok := AsFlowError(err)
	require.True(t, ok)
	assert.Equal(t, CodeSubmissionFailed, fe.Code)

	// No email on a failed submission.
	assert.Empty(t, email.sent)

	// The session keeps its snapshot so the user can retry as-is.
	session, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionReviewing, session.State)
	assert.NotNil(t, session.Snapshot)
}

func TestConfirmEmailFailureIsNonFatal(t *testing.T) {
	svc, requests, email, queue := newTestService(t, studioCatalog())
	email.err = errors.New("smtp relay refused")
	ctx := context.Background()
	sessionID := readySession(t, svc)

	_, err := svc.Stage(ctx, sessionID)
	require.NoError(t, err)

	response, err := svc.Confirm(ctx, sessionID)
	require.NoError(t, err)

	// The request exists regardless of the email outcome.
	assert.Equal(t, models.SessionSubmitted, response.Status)
	assert.False(t, response.EmailSent)
	assert.Equal(t, CodeEmailDeliveryFailed, response.Warning)
	assert.Len(t, requests.created, 1)

	// The failed message is queued for retry.
	require.Len(t, queue.retries, 1)
	assert.Equal(t, "ada@example.com", queue.retries[0].Recipient)
	assert.Equal(t, "req-0001", queue.retries[0].RequestID)
}

func TestConfirmSchedulesReminder(t *testing.T) {
	svc, _, _, queue := newTestService(t, studioCatalog())
	ctx := context.Background()
	sessionID := readySession(t, svc)

	_, err := svc.Stage(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, sessionID)
	require.NoError(t, err)

	require.Len(t, queue.reminders, 1)
	start, err := time.Parse("2006-01-02", "2030-06-10")
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, -1), queue.fireAts[0])
}

func TestConfirmSkipsReminderWithoutStartDate(t *testing.T) {
	svc, _, _, queue := newTestService(t, studioCatalog())
	ctx := context.Background()

	session, err := svc.Initiate(ctx, models.FlowBooking, "photo")
	require.NoError(t, err)
	_, err = svc.ToggleOffering(ctx, session.SessionID, "studio-a")
	require.NoError(t, err)
	name := "Ada Obi"
	emailAddr := "ada@example.com"
	_, err = svc.UpdateDetails(ctx, session.SessionID, models.RequestDetailsInput{Name: &name, Email: &emailAddr})
	require.NoError(t, err)

	_, err = svc.Stage(ctx, session.SessionID)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, session.SessionID)
	require.NoError(t, err)

	assert.Empty(t, queue.reminders)
}
