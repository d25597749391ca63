package request

import (
	"context"
	"strings"
	"time"

	"studiohub/models"

	"github.com/google/uuid"
)

// Stage freezes the current selection into an immutable confirmation
// snapshot and moves the session to reviewing. Preconditions: at least
// one offering selected, contact name and email non-empty. Failures
// come back as an incompleteSelection flow error naming every missing
// field; the session stays editable and the user is re-prompted.
func (s *DefaultSessionService) Stage(ctx context.Context, sessionID string) (*models.RequestSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CatalogDegraded {
		return nil, NewCatalogUnavailable(nil)
	}

	var missing []string
	if len(session.Selection.SelectedOfferings) == 0 {
		missing = append(missing, "offerings")
	}
	if strings.TrimSpace(session.Selection.Contact.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(session.Selection.Contact.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, NewIncompleteSelection(missing...)
	}

	snapshot := s.buildSnapshot(session)
	session.Snapshot = &snapshot
	session.State = models.SessionReviewing

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Unstage returns a reviewing session to editing, keeping every
// selection and input intact.
func (s *DefaultSessionService) Unstage(ctx context.Context, sessionID string) (*models.RequestSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.State = models.SessionEditing
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// buildSnapshot copies the selection, the resolved offering details,
// and a fresh pricing summary into an independent snapshot. Offerings
// are value copies, so later catalog or selection mutations cannot
// show through.
func (s *DefaultSessionService) buildSnapshot(session *models.RequestSession) models.ConfirmationSnapshot {
	selected := resolveSelected(session)
	duration := ComputeDuration(session.Selection.StartDate, session.Selection.EndDate)

	snapshot := models.ConfirmationSnapshot{
		SnapshotID:    uuid.New().String(),
		FlowType:      session.Selection.FlowType,
		Category:      session.Selection.Category,
		Offerings:     append([]models.Offering(nil), selected...),
		Contact:       session.Selection.Contact,
		StartDate:     session.Selection.StartDate,
		EndDate:       session.Selection.EndDate,
		StartTime:     session.Selection.StartTime,
		EndTime:       session.Selection.EndTime,
		PartySize:     session.Selection.PartySize,
		DurationText:  duration.Display(),
		Notes:         session.Selection.Notes,
		AppliedBundle: session.AppliedBundle,
		Pricing:       session.Pricing,
		CreatedAt:     time.Now(),
	}
	if !duration.Unspecified {
		snapshot.DurationDays = duration.Days
	}
	return snapshot
}
