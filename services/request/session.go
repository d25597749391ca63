package request

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studiohub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "request_session:"

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *DefaultSessionService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}

// Initiate creates a new request session for the given flow, loads the
// catalog into it, and stores it in the session cache. A catalog
// failure degrades to an empty catalog rather than failing the flow.
func (s *DefaultSessionService) Initiate(ctx context.Context, flowType, category string) (*models.RequestSession, error) {
	if flowType != models.FlowBooking && flowType != models.FlowRental {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flowType)
	}

	session := &models.RequestSession{
		SessionID: uuid.New().String(),
		State:     models.SessionEditing,
		Selection: models.SelectionState{
			FlowType:          flowType,
			Category:          category,
			SelectedOfferings: []string{},
		},
		CreatedAt: time.Now(),
	}
	s.refreshCatalog(ctx, session)
	s.recomputePricing(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current session.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.RequestSession, error) {
	return s.loadSession(ctx, sessionID)
}

// SelectCategory switches the session's category. Changing category
// resets the offering selection so selected IDs always belong to the
// current category's catalog.
func (s *DefaultSessionService) SelectCategory(ctx context.Context, sessionID, category string) (*models.RequestSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Selection.Category != category {
		session.Selection.Category = category
		session.Selection.SelectedOfferings = []string{}
		session.AppliedBundle = ""
		s.refreshCatalog(ctx, session)
	}
	session.State = models.SessionEditing
	s.recomputePricing(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ToggleOffering adds or removes an offering from the selection. The
// toggle is idempotent in pairs and a no-op for unknown or disabled
// offerings.
func (s *DefaultSessionService) ToggleOffering(ctx context.Context, sessionID, offeringID string) (*models.RequestSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	offering, ok := findOffering(session.Catalog, offeringID)
	if !ok || !offering.Enabled {
		return session, nil
	}

	removed := false
	for i, id := range session.Selection.SelectedOfferings {
		if id == offeringID {
			session.Selection.SelectedOfferings = append(
				session.Selection.SelectedOfferings[:i],
				session.Selection.SelectedOfferings[i+1:]...,
			)
			removed = true
			break
		}
	}
	if !removed {
		session.Selection.SelectedOfferings = append(session.Selection.SelectedOfferings, offeringID)
	}

	session.State = models.SessionEditing
	s.recomputePricing(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateDetails applies a partial, typed detail update. There is no
// cross-field validation at write time; staging validates once.
func (s *DefaultSessionService) UpdateDetails(ctx context.Context, sessionID string, input models.RequestDetailsInput) (*models.RequestSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sel := &session.Selection
	if input.Name != nil {
		sel.Contact.Name = *input.Name
	}
	if input.Phone != nil {
		sel.Contact.Phone = *input.Phone
	}
	if input.Email != nil {
		sel.Contact.Email = *input.Email
	}
	if input.PreferredChannel != nil {
		sel.Contact.PreferredChannel = *input.PreferredChannel
	}
	if input.StartDate != nil {
		sel.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		sel.EndDate = *input.EndDate
	}
	if input.StartTime != nil {
		sel.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		sel.EndTime = *input.EndTime
	}
	if input.PartySize != nil {
		sel.PartySize = *input.PartySize
	}
	if input.Notes != nil {
		sel.Notes = *input.Notes
	}

	session.State = models.SessionEditing
	s.recomputePricing(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ApplyBundle selects all offerings of the bundle and carries its
// discount. An empty bundleID clears the applied bundle.
func (s *DefaultSessionService) ApplyBundle(ctx context.Context, sessionID, bundleID string) (*models.RequestSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if bundleID == "" {
		session.AppliedBundle = ""
	} else {
		bundle, ok := findBundle(session.Bundles, bundleID)
		if !ok {
			return nil, fmt.Errorf("bundle %q not found for this flow", bundleID)
		}
		for _, id := range bundle.OfferingIDs {
			offering, ok := findOffering(session.Catalog, id)
			if !ok || !offering.Enabled {
				return nil, fmt.Errorf("bundle %q contains an unavailable offering (%s)", bundleID, id)
			}
		}
		for _, id := range bundle.OfferingIDs {
			if !contains(session.Selection.SelectedOfferings, id) {
				session.Selection.SelectedOfferings = append(session.Selection.SelectedOfferings, id)
			}
		}
		session.AppliedBundle = bundleID
	}

	session.State = models.SessionEditing
	s.recomputePricing(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards the session. Abandonment needs no further cleanup;
// nothing is persisted mid-flow.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel request session: %w", err)
	}
	return nil
}

// ListCatalog returns enabled offerings for direct catalog reads. A
// storage failure yields an empty list plus a catalogUnavailable flow
// error so the caller can degrade instead of crashing.
func (s *DefaultSessionService) ListCatalog(ctx context.Context, flowType, category string) ([]models.Offering, error) {
	if flowType != models.FlowBooking && flowType != models.FlowRental {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flowType)
	}
	offerings, err := s.CatalogRepo.ListOfferings(ctx, flowType, category)
	if err != nil {
		s.Logger.Warn("catalog read failed",
			zap.String("flowType", flowType), zap.Error(err))
		return []models.Offering{}, NewCatalogUnavailable(err)
	}
	return offerings, nil
}

// ListBundles returns enabled bundles for the flow.
func (s *DefaultSessionService) ListBundles(ctx context.Context, flowType string) ([]models.Bundle, error) {
	if flowType != models.FlowBooking && flowType != models.FlowRental {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flowType)
	}
	bundles, err := s.CatalogRepo.ListBundles(ctx, flowType)
	if err != nil {
		s.Logger.Warn("bundle read failed",
			zap.String("flowType", flowType), zap.Error(err))
		return []models.Bundle{}, NewCatalogUnavailable(err)
	}
	return bundles, nil
}

// refreshCatalog loads offerings and bundles for the session's flow and
// category. A storage failure degrades the session to an empty catalog
// and flags it so submission stays disabled.
func (s *DefaultSessionService) refreshCatalog(ctx context.Context, session *models.RequestSession) {
	offerings, err := s.CatalogRepo.ListOfferings(ctx, session.Selection.FlowType, session.Selection.Category)
	if err != nil {
		s.Logger.Warn("catalog unavailable, degrading to empty catalog",
			zap.String("sessionId", session.SessionID), zap.Error(err))
		session.Catalog = []models.Offering{}
		session.Bundles = nil
		session.CatalogDegraded = true
		return
	}

	bundles, err := s.CatalogRepo.ListBundles(ctx, session.Selection.FlowType)
	if err != nil {
		s.Logger.Warn("bundle load failed, continuing without bundles",
			zap.String("sessionId", session.SessionID), zap.Error(err))
		bundles = nil
	}

	session.Catalog = offerings
	session.Bundles = bundles
	session.CatalogDegraded = false
}

// recomputePricing resolves the selection against the catalog and
// rebuilds the pricing summary. The bundle discount only applies while
// every offering of the applied bundle remains selected.
func (s *DefaultSessionService) recomputePricing(session *models.RequestSession) {
	selected := resolveSelected(session)

	discount := 0
	if session.AppliedBundle != "" {
		if bundle, ok := findBundle(session.Bundles, session.AppliedBundle); ok && bundleFullySelected(bundle, session.Selection.SelectedOfferings) {
			discount = bundle.DiscountPercent
		}
	}

	session.Pricing = ComputeSummary(selected, discount, s.Currency)
}

// resolveSelected returns copies of the selected offerings in selection
// order, skipping IDs that fell out of the catalog.
func resolveSelected(session *models.RequestSession) []models.Offering {
	selected := make([]models.Offering, 0, len(session.Selection.SelectedOfferings))
	for _, id := range session.Selection.SelectedOfferings {
		if offering, ok := findOffering(session.Catalog, id); ok {
			selected = append(selected, offering)
		}
	}
	return selected
}

func findOffering(catalog []models.Offering, id string) (models.Offering, bool) {
	for _, o := range catalog {
		if o.ID == id {
			return o, true
		}
	}
	return models.Offering{}, false
}

func findBundle(bundles []models.Bundle, id string) (models.Bundle, bool) {
	for _, b := range bundles {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bundle{}, false
}

func bundleFullySelected(bundle models.Bundle, selected []string) bool {
	for _, id := range bundle.OfferingIDs {
		if !contains(selected, id) {
			return false
		}
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.RequestSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	var session models.RequestSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse request session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) saveSession(ctx context.Context, session *models.RequestSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal request session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store request session: %w", err)
	}
	return nil
}
