package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studiohub/models"
	"studiohub/services/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubSessionService overrides only the catalog reads; other methods
// panic through the embedded nil interface if reached.
type stubSessionService struct {
	request.SessionService
	offerings []models.Offering
	err       error
}

func (s *stubSessionService) ListCatalog(ctx context.Context, flowType, category string) ([]models.Offering, error) {
	return s.offerings, s.err
}

func TestInitiateSessionRejectsBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRequestHandler(nil, nil, zap.NewNop())
	router := gin.New()
	router.POST("/api/requests/session", h.InitiateSession)

	req := httptest.NewRequest(http.MethodPost, "/api/requests/session", strings.NewReader("{"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid input")
}

func TestListOfferingsUnknownFlowIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubSessionService{err: fmt.Errorf("%w: %q", request.ErrUnknownFlow, "car-wash")}
	h := NewCatalogHandler(svc, zap.NewNop())
	router := gin.New()
	router.GET("/api/catalog/:flowType", h.ListOfferings)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/car-wash", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown flow type")
}

func TestListOfferingsDegradesWithWarning(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubSessionService{
		offerings: []models.Offering{},
		err:       request.NewCatalogUnavailable(fmt.Errorf("store down")),
	}
	h := NewCatalogHandler(svc, zap.NewNop())
	router := gin.New()
	router.GET("/api/catalog/:flowType", h.ListOfferings)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/booking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), request.CodeCatalogUnavailable)
}
