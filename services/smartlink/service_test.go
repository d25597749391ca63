package smartlink

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"studiohub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLinkRepo struct {
	pages   map[string]*models.SmartLink
	buttons map[string]*models.LinkButton
	nextID  int
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{
		pages:   map[string]*models.SmartLink{},
		buttons: map[string]*models.LinkButton{},
	}
}

func (f *fakeLinkRepo) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeLinkRepo) CreatePage(ctx context.Context, page models.SmartLink) (string, error) {
	page.ID = f.id()
	f.pages[page.ID] = &page
	return page.ID, nil
}

func (f *fakeLinkRepo) GetPageByID(ctx context.Context, id string) (*models.SmartLink, error) {
	if page, ok := f.pages[id]; ok {
		copied := *page
		return &copied, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeLinkRepo) GetPageBySlug(ctx context.Context, slug string) (*models.SmartLink, error) {
	for _, page := range f.pages {
		if page.Slug == slug {
			copied := *page
			return &copied, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeLinkRepo) UpdatePage(ctx context.Context, page *models.SmartLink) error {
	if _, ok := f.pages[page.ID]; !ok {
		return errors.New("not found")
	}
	copied := *page
	f.pages[page.ID] = &copied
	return nil
}

func (f *fakeLinkRepo) DeletePage(ctx context.Context, id string) error {
	if _, ok := f.pages[id]; !ok {
		return errors.New("not found")
	}
	delete(f.pages, id)
	return nil
}

func (f *fakeLinkRepo) AddButton(ctx context.Context, button models.LinkButton) (string, error) {
	button.ID = f.id()
	f.buttons[button.ID] = &button
	return button.ID, nil
}

func (f *fakeLinkRepo) ListButtons(ctx context.Context, linkID string) ([]models.LinkButton, error) {
	var out []models.LinkButton
	for _, b := range f.buttons {
		if b.LinkID == linkID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeLinkRepo) ReorderButtons(ctx context.Context, linkID string, buttonIDs []string) error {
	for position, id := range buttonIDs {
		b, ok := f.buttons[id]
		if !ok || b.LinkID != linkID {
			return errors.New("not found")
		}
		b.Position = position
	}
	return nil
}

func (f *fakeLinkRepo) DeleteButton(ctx context.Context, linkID, buttonID string) error {
	if b, ok := f.buttons[buttonID]; ok && b.LinkID == linkID {
		delete(f.buttons, buttonID)
		return nil
	}
	return errors.New("not found")
}

func (f *fakeLinkRepo) IncrementClicks(ctx context.Context, linkID, buttonID string) error {
	if b, ok := f.buttons[buttonID]; ok && b.LinkID == linkID {
		b.Clicks++
		return nil
	}
	return errors.New("not found")
}

func newTestService() (*DefaultService, *fakeLinkRepo) {
	repo := newFakeLinkRepo()
	return &DefaultService{Repo: repo, Logger: zap.NewNop()}, repo
}

func TestCreatePageNormalizesSlug(t *testing.T) {
	svc, _ := newTestService()

	page, err := svc.CreatePage(context.Background(), CreatePageInput{
		Slug:  "  Lagos-Studio  ",
		Title: "Lagos Studio",
	})
	require.NoError(t, err)

	assert.Equal(t, "lagos-studio", page.Slug)
	assert.True(t, page.Enabled)
	assert.NotEmpty(t, page.ID)
}

func TestCreatePageRejectsBadSlug(t *testing.T) {
	svc, _ := newTestService()

	for _, slug := range []string{"a", "has spaces", "UPPER!", ""} {
		_, err := svc.CreatePage(context.Background(), CreatePageInput{Slug: slug, Title: "T"})
		assert.Error(t, err, "slug %q should be rejected", slug)
	}
}

func TestCreatePageRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreatePage(ctx, CreatePageInput{Slug: "taken", Title: "First"})
	require.NoError(t, err)

	_, err = svc.CreatePage(ctx, CreatePageInput{Slug: "taken", Title: "Second"})
	assert.Error(t, err)
}

func TestGetPageIncludesButtons(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, CreatePageInput{Slug: "studio", Title: "Studio"})
	require.NoError(t, err)
	_, err = svc.AddButton(ctx, page.ID, ButtonInput{Label: "Book now", URL: "https://studiohub.ng/book"})
	require.NoError(t, err)

	view, err := svc.GetPage(ctx, "STUDIO")
	require.NoError(t, err)

	assert.Equal(t, "studio", view.Slug)
	require.Len(t, view.Buttons, 1)
	assert.Equal(t, "Book now", view.Buttons[0].Label)
}

func TestUpdatePagePartial(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, CreatePageInput{Slug: "studio", Title: "Studio", Bio: "old bio"})
	require.NoError(t, err)

	bio := "new bio"
	updated, err := svc.UpdatePage(ctx, page.ID, UpdatePageInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "Studio", updated.Title)
	assert.Equal(t, "new bio", updated.Bio)
}

func TestAddButtonRequiresPage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddButton(context.Background(), "missing", ButtonInput{Label: "X", URL: "https://x"})
	assert.Error(t, err)
}

func TestReorderButtons(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, CreatePageInput{Slug: "studio", Title: "Studio"})
	require.NoError(t, err)
	first, err := svc.AddButton(ctx, page.ID, ButtonInput{Label: "Book", URL: "https://x", Position: 0})
	require.NoError(t, err)
	second, err := svc.AddButton(ctx, page.ID, ButtonInput{Label: "Prices", URL: "https://y", Position: 1})
	require.NoError(t, err)

	buttons, err := svc.ReorderButtons(ctx, page.ID, []string{second.ID, first.ID})
	require.NoError(t, err)

	require.Len(t, buttons, 2)
	assert.Equal(t, "Prices", buttons[0].Label)
	assert.Equal(t, 0, buttons[0].Position)
	assert.Equal(t, "Book", buttons[1].Label)
	assert.Equal(t, 1, buttons[1].Position)
}

func TestReorderButtonsRejectsPartialOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, CreatePageInput{Slug: "studio", Title: "Studio"})
	require.NoError(t, err)
	first, err := svc.AddButton(ctx, page.ID, ButtonInput{Label: "Book", URL: "https://x"})
	require.NoError(t, err)
	_, err = svc.AddButton(ctx, page.ID, ButtonInput{Label: "Prices", URL: "https://y"})
	require.NoError(t, err)

	// Naming only one of two buttons is rejected.
	_, err = svc.ReorderButtons(ctx, page.ID, []string{first.ID})
	assert.Error(t, err)

	// So is naming the same button twice.
	_, err = svc.ReorderButtons(ctx, page.ID, []string{first.ID, first.ID})
	assert.Error(t, err)

	// And a button from another page.
	other, err := svc.CreatePage(ctx, CreatePageInput{Slug: "other", Title: "Other"})
	require.NoError(t, err)
	foreign, err := svc.AddButton(ctx, other.ID, ButtonInput{Label: "Z", URL: "https://z"})
	require.NoError(t, err)
	_, err = svc.ReorderButtons(ctx, page.ID, []string{first.ID, foreign.ID})
	assert.Error(t, err)
}

func TestTrackClick(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, CreatePageInput{Slug: "studio", Title: "Studio"})
	require.NoError(t, err)
	button, err := svc.AddButton(ctx, page.ID, ButtonInput{Label: "Book", URL: "https://x"})
	require.NoError(t, err)

	require.NoError(t, svc.TrackClick(ctx, "studio", button.ID))
	require.NoError(t, svc.TrackClick(ctx, "studio", button.ID))

	assert.Equal(t, int64(2), repo.buttons[button.ID].Clicks)
}

func TestTrackClickScopedToPage(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	page, err := svc.CreatePage(ctx, CreatePageInput{Slug: "studio", Title: "Studio"})
	require.NoError(t, err)
	button, err := svc.AddButton(ctx, page.ID, ButtonInput{Label: "Book", URL: "https://x"})
	require.NoError(t, err)
	_, err = svc.CreatePage(ctx, CreatePageInput{Slug: "other", Title: "Other"})
	require.NoError(t, err)

	// A click reported under another page's slug counts nothing.
	assert.Error(t, svc.TrackClick(ctx, "other", button.ID))
	assert.Equal(t, int64(0), repo.buttons[button.ID].Clicks)
}
