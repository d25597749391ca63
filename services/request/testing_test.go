package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiohub/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	offerings []models.Offering
	bundles   []models.Bundle
	fail      bool
}

func (f *fakeCatalogRepo) ListOfferings(ctx context.Context, flowType, category string) ([]models.Offering, error) {
	if f.fail {
		return nil, errors.New("catalog store down")
	}
	out := make([]models.Offering, 0, len(f.offerings))
	for _, o := range f.offerings {
		if category == "" || o.Category == category {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListBundles(ctx context.Context, flowType string) ([]models.Bundle, error) {
	if f.fail {
		return nil, errors.New("catalog store down")
	}
	return f.bundles, nil
}

type fakeRequestRepo struct {
	err     error
	created []*models.RequestRecord
}

func (f *fakeRequestRepo) Create(ctx context.Context, record *models.RequestRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	record.ID = "req-0001"
	record.CreatedAt = time.Now()
	f.created = append(f.created, record)
	return record.ID, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, flowType, id string) (*models.RequestRecord, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("request not found")
}

type sentEmail struct {
	recipient, subject, body string
}

type fakeEmailSender struct {
	err  error
	sent []sentEmail
}

func (f *fakeEmailSender) Send(ctx context.Context, recipient, subject, body string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, sentEmail{recipient: recipient, subject: subject, body: body})
	return "msg-0001", nil
}

type fakeTaskQueue struct {
	retries   []models.EmailPayload
	reminders []models.EmailPayload
	fireAts   []time.Time
}

func (f *fakeTaskQueue) EnqueueEmailRetry(payload models.EmailPayload) error {
	f.retries = append(f.retries, payload)
	return nil
}

func (f *fakeTaskQueue) ScheduleReminder(payload models.EmailPayload, fireAt time.Time) error {
	f.reminders = append(f.reminders, payload)
	f.fireAts = append(f.fireAts, fireAt)
	return nil
}

// studioCatalog is a small two-category catalog with one bundle, enough
// to exercise selection, toggling, and discounts.
func studioCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		offerings: []models.Offering{
			{ID: "studio-a", Name: "Studio A", Category: "photo", Price: 50000, Enabled: true},
			{ID: "studio-b", Name: "Studio B", Category: "photo", Price: 80000, Enabled: true},
			{ID: "lighting", Name: "Lighting Rig", Category: "photo", Price: 20000,
				RequiresDeposit: true, DepositAmount: 100000, Enabled: true},
			{ID: "retired", Name: "Retired Room", Category: "photo", Price: 5000, Enabled: false},
			{ID: "vocal-booth", Name: "Vocal Booth", Category: "audio", Price: 60000, Enabled: true},
		},
		bundles: []models.Bundle{
			{ID: "photo-day", Name: "Photo Day", OfferingIDs: []string{"studio-a", "lighting"},
				DiscountPercent: 10, Enabled: true},
		},
	}
}

func newTestService(t *testing.T, catalog *fakeCatalogRepo) (*DefaultSessionService, *fakeRequestRepo, *fakeEmailSender, *fakeTaskQueue) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	requests := &fakeRequestRepo{}
	email := &fakeEmailSender{}
	queue := &fakeTaskQueue{}

	svc := &DefaultSessionService{
		CatalogRepo: catalog,
		RequestRepo: requests,
		Cache:       cache,
		Email:       email,
		Tasks:       queue,
		Logger:      zap.NewNop(),
		SessionTTL:  30 * time.Minute,
		Currency:    "NGN",
	}
	return svc, requests, email, queue
}
