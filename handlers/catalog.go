package handlers

import (
	"errors"
	"net/http"

	"studiohub/services/request"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves direct catalog reads.
type CatalogHandler struct {
	Svc    request.SessionService
	Logger *zap.Logger
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(svc request.SessionService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// ListOfferings handles GET /api/catalog/:flowType. An unreachable
// store degrades to an empty list with a warning instead of an error
// status, so clients keep rendering and just disable submission.
func (h *CatalogHandler) ListOfferings(c *gin.Context) {
	flowType := c.Param("flowType")
	category := c.Query("category")

	offerings, err := h.Svc.ListCatalog(c.Request.Context(), flowType, category)
	if err != nil {
		if errors.Is(err, request.ErrUnknownFlow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flow type", "message": err.Error()})
			return
		}
		if fe, ok := request.AsFlowError(err); ok && fe.Code == request.CodeCatalogUnavailable {
			c.JSON(http.StatusOK, gin.H{"offerings": offerings, "warning": fe.Code})
			return
		}
		h.Logger.Error("ListOfferings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch catalog", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"offerings": offerings})
}

// ListBundles handles GET /api/catalog/:flowType/bundles.
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	flowType := c.Param("flowType")

	bundles, err := h.Svc.ListBundles(c.Request.Context(), flowType)
	if err != nil {
		if errors.Is(err, request.ErrUnknownFlow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flow type", "message": err.Error()})
			return
		}
		if fe, ok := request.AsFlowError(err); ok && fe.Code == request.CodeCatalogUnavailable {
			c.JSON(http.StatusOK, gin.H{"bundles": bundles, "warning": fe.Code})
			return
		}
		h.Logger.Error("ListBundles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bundles", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bundles": bundles})
}
