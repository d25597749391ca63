package smartlink

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"studiohub/database/repository"
	"studiohub/models"

	"go.uber.org/zap"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{2,64}$`)

// Service manages link-in-bio pages and their buttons.
type Service interface {
	CreatePage(ctx context.Context, input CreatePageInput) (*models.SmartLink, error)
	GetPage(ctx context.Context, slug string) (*models.SmartLinkPage, error)
	UpdatePage(ctx context.Context, id string, input UpdatePageInput) (*models.SmartLink, error)
	DeletePage(ctx context.Context, id string) error
	AddButton(ctx context.Context, linkID string, input ButtonInput) (*models.LinkButton, error)
	ReorderButtons(ctx context.Context, linkID string, buttonIDs []string) ([]models.LinkButton, error)
	DeleteButton(ctx context.Context, linkID, buttonID string) error
	TrackClick(ctx context.Context, slug, buttonID string) error
}

// CreatePageInput carries the fields for a new page.
type CreatePageInput struct {
	Slug      string `json:"slug" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	Theme     string `json:"theme"`
}

// UpdatePageInput is a partial page update; nil fields are unchanged.
type UpdatePageInput struct {
	Title     *string `json:"title"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	Theme     *string `json:"theme"`
	Enabled   *bool   `json:"enabled"`
}

// ButtonInput carries the fields for a new button.
type ButtonInput struct {
	Label    string `json:"label" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Position int    `json:"position"`
}

// DefaultService implements Service.
type DefaultService struct {
	Repo   repository.SmartLinkRepository
	Logger *zap.Logger
}

// CreatePage validates the slug and creates the page.
func (s *DefaultService) CreatePage(ctx context.Context, input CreatePageInput) (*models.SmartLink, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug %q: use 2-64 lowercase letters, digits, or hyphens", input.Slug)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if existing, err := s.Repo.GetPageBySlug(ctx, slug); err == nil && existing != nil {
		return nil, fmt.Errorf("slug %q is already taken", slug)
	}

	page := models.SmartLink{
		Slug:      slug,
		Title:     input.Title,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
		Theme:     input.Theme,
		Enabled:   true,
	}
	id, err := s.Repo.CreatePage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to create smart link: %w", err)
	}
	page.ID = id
	return &page, nil
}

// GetPage returns the public view of an enabled page with its buttons.
func (s *DefaultService) GetPage(ctx context.Context, slug string) (*models.SmartLinkPage, error) {
	page, err := s.Repo.GetPageBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, fmt.Errorf("smart link %q not found: %w", slug, err)
	}
	buttons, err := s.Repo.ListButtons(ctx, page.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buttons for %q: %w", slug, err)
	}
	return &models.SmartLinkPage{SmartLink: *page, Buttons: buttons}, nil
}

// UpdatePage applies a partial update to the page.
func (s *DefaultService) UpdatePage(ctx context.Context, id string, input UpdatePageInput) (*models.SmartLink, error) {
	page, err := s.Repo.GetPageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("smart link %s not found: %w", id, err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		page.Title = *input.Title
	}
	if input.Bio != nil {
		page.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		page.AvatarURL = *input.AvatarURL
	}
	if input.Theme != nil {
		page.Theme = *input.Theme
	}
	if input.Enabled != nil {
		page.Enabled = *input.Enabled
	}

	if err := s.Repo.UpdatePage(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to update smart link: %w", err)
	}
	return page, nil
}

// DeletePage removes a page and its buttons.
func (s *DefaultService) DeletePage(ctx context.Context, id string) error {
	if err := s.Repo.DeletePage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete smart link: %w", err)
	}
	return nil
}

// AddButton validates and appends a button to a page.
func (s *DefaultService) AddButton(ctx context.Context, linkID string, input ButtonInput) (*models.LinkButton, error) {
	if strings.TrimSpace(input.Label) == "" || strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("button label and url are required")
	}
	if _, err := s.Repo.GetPageByID(ctx, linkID); err != nil {
		return nil, fmt.Errorf("smart link %s not found: %w", linkID, err)
	}

	button := models.LinkButton{
		LinkID:   linkID,
		Label:    input.Label,
		URL:      input.URL,
		Position: input.Position,
		Enabled:  true,
	}
	id, err := s.Repo.AddButton(ctx, button)
	if err != nil {
		return nil, fmt.Errorf("failed to add button: %w", err)
	}
	button.ID = id
	return &button, nil
}

// ReorderButtons rewrites the page's button order to match buttonIDs
// and returns the buttons in their new order. The list must name every
// button of the page exactly once.
func (s *DefaultService) ReorderButtons(ctx context.Context, linkID string, buttonIDs []string) ([]models.LinkButton, error) {
	if _, err := s.Repo.GetPageByID(ctx, linkID); err != nil {
		return nil, fmt.Errorf("smart link %s not found: %w", linkID, err)
	}

	existing, err := s.Repo.ListButtons(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buttons: %w", err)
	}
	if len(buttonIDs) != len(existing) {
		return nil, fmt.Errorf("order must name all %d buttons, got %d", len(existing), len(buttonIDs))
	}
	seen := make(map[string]bool, len(buttonIDs))
	for _, id := range buttonIDs {
		if seen[id] {
			return nil, fmt.Errorf("button %s listed twice", id)
		}
		seen[id] = true
	}
	for _, b := range existing {
		if !seen[b.ID] {
			return nil, fmt.Errorf("order is missing button %s", b.ID)
		}
	}

	if err := s.Repo.ReorderButtons(ctx, linkID, buttonIDs); err != nil {
		return nil, fmt.Errorf("failed to reorder buttons: %w", err)
	}
	return s.Repo.ListButtons(ctx, linkID)
}

// DeleteButton removes a button from a page.
func (s *DefaultService) DeleteButton(ctx context.Context, linkID, buttonID string) error {
	if err := s.Repo.DeleteButton(ctx, linkID, buttonID); err != nil {
		return fmt.Errorf("failed to delete button: %w", err)
	}
	return nil
}

// TrackClick counts a click on a button of a public page. The button
// must belong to the page the slug resolves to.
func (s *DefaultService) TrackClick(ctx context.Context, slug, buttonID string) error {
	page, err := s.Repo.GetPageBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return fmt.Errorf("smart link %q not found: %w", slug, err)
	}
	if err := s.Repo.IncrementClicks(ctx, page.ID, buttonID); err != nil {
		s.Logger.Warn("click tracking failed",
			zap.String("slug", page.Slug), zap.String("buttonId", buttonID), zap.Error(err))
		return fmt.Errorf("failed to track click: %w", err)
	}
	return nil
}
