package request

import (
	"context"
	"time"

	"studiohub/database/repository"
	"studiohub/models"
	"studiohub/services/notification"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionService manages the stateful request-building session: catalog
// browsing, selection, pricing, confirmation staging, and submission.
type SessionService interface {
	Initiate(ctx context.Context, flowType, category string) (*models.RequestSession, error)
	Get(ctx context.Context, sessionID string) (*models.RequestSession, error)
	SelectCategory(ctx context.Context, sessionID, category string) (*models.RequestSession, error)
	ToggleOffering(ctx context.Context, sessionID, offeringID string) (*models.RequestSession, error)
	UpdateDetails(ctx context.Context, sessionID string, input models.RequestDetailsInput) (*models.RequestSession, error)
	ApplyBundle(ctx context.Context, sessionID, bundleID string) (*models.RequestSession, error)
	Stage(ctx context.Context, sessionID string) (*models.RequestSession, error)
	Unstage(ctx context.Context, sessionID string) (*models.RequestSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.RequestConfirmationResponse, error)
	Cancel(ctx context.Context, sessionID string) error

	ListCatalog(ctx context.Context, flowType, category string) ([]models.Offering, error)
	ListBundles(ctx context.Context, flowType string) ([]models.Bundle, error)
}

// TaskEnqueuer hands email work to the background queue. Kept as a
// small consumer-side interface so tests can fake it.
type TaskEnqueuer interface {
	EnqueueEmailRetry(payload models.EmailPayload) error
	ScheduleReminder(payload models.EmailPayload, fireAt time.Time) error
}

// DefaultSessionService implements SessionService on top of a Redis
// session cache, the catalog and request repositories, and the email
// collaborator. All dependencies are injected; the service holds no
// ambient state.
type DefaultSessionService struct {
	CatalogRepo repository.CatalogRepository
	RequestRepo repository.RequestRepository
	Cache       *redis.Client
	Email       notification.EmailService
	Tasks       TaskEnqueuer
	Logger      *zap.Logger
	SessionTTL  time.Duration
	Currency    string
}
