package handlers

import (
	"net/http"

	"studiohub/services/smartlink"
	"studiohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SmartLinkHandler exposes the link-in-bio service.
type SmartLinkHandler struct {
	Svc    smartlink.Service
	Logger *zap.Logger
}

// NewSmartLinkHandler builds the handler.
func NewSmartLinkHandler(svc smartlink.Service, logger *zap.Logger) *SmartLinkHandler {
	return &SmartLinkHandler{Svc: svc, Logger: logger}
}

// CreatePage handles POST /api/smartlinks.
func (h *SmartLinkHandler) CreatePage(c *gin.Context) {
	var input smartlink.CreatePageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	page, err := h.Svc.CreatePage(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create page", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, page)
}

// GetPage handles GET /api/smartlinks/:slug (public).
func (h *SmartLinkHandler) GetPage(c *gin.Context) {
	page, err := h.Svc.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdatePage handles PUT /api/smartlinks/:id.
func (h *SmartLinkHandler) UpdatePage(c *gin.Context) {
	var input smartlink.UpdatePageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	page, err := h.Svc.UpdatePage(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update page", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeletePage handles DELETE /api/smartlinks/:id.
func (h *SmartLinkHandler) DeletePage(c *gin.Context) {
	if err := h.Svc.DeletePage(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to delete page", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// AddButton handles POST /api/smartlinks/:id/buttons.
func (h *SmartLinkHandler) AddButton(c *gin.Context) {
	var input smartlink.ButtonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	button, err := h.Svc.AddButton(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to add button", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, button)
}

// ReorderButtons handles PUT /api/smartlinks/manage/:id/buttons/order.
func (h *SmartLinkHandler) ReorderButtons(c *gin.Context) {
	var body struct {
		ButtonIDs []string `json:"buttonIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	buttons, err := h.Svc.ReorderButtons(c.Request.Context(), c.Param("id"), body.ButtonIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to reorder buttons", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buttons": buttons})
}

// DeleteButton handles DELETE /api/smartlinks/:id/buttons/:buttonID.
func (h *SmartLinkHandler) DeleteButton(c *gin.Context) {
	if err := h.Svc.DeleteButton(c.Request.Context(), c.Param("id"), c.Param("buttonID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to delete button", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// TrackClick handles POST /api/smartlinks/:slug/buttons/:buttonID/click.
func (h *SmartLinkHandler) TrackClick(c *gin.Context) {
	if err := h.Svc.TrackClick(c.Request.Context(), c.Param("slug"), c.Param("buttonID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to track click"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
