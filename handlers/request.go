package handlers

import (
	"errors"
	"net/http"

	"studiohub/models"
	"studiohub/services/request"
	"studiohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestHandler exposes the request-building session over HTTP.
type RequestHandler struct {
	Svc      request.SessionService
	Payments request.PaymentHandler
	Logger   *zap.Logger
}

// NewRequestHandler builds the handler.
func NewRequestHandler(svc request.SessionService, payments request.PaymentHandler, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{Svc: svc, Payments: payments, Logger: logger}
}

// InitiateSession handles POST /api/requests/session.
func (h *RequestHandler) InitiateSession(c *gin.Context) {
	var body struct {
		FlowType string `json:"flowType" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.Initiate(c.Request.Context(), body.FlowType, body.Category)
	if err != nil {
		h.respondError(c, "InitiateSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/requests/session/:sessionID.
func (h *RequestHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectCategory handles PUT /api/requests/session/:sessionID/category.
func (h *RequestHandler) SelectCategory(c *gin.Context) {
	var body struct {
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.SelectCategory(c.Request.Context(), c.Param("sessionID"), body.Category)
	if err != nil {
		h.respondError(c, "SelectCategory", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleOffering handles POST /api/requests/session/:sessionID/offerings/:offeringID.
func (h *RequestHandler) ToggleOffering(c *gin.Context) {
	session, err := h.Svc.ToggleOffering(c.Request.Context(), c.Param("sessionID"), c.Param("offeringID"))
	if err != nil {
		h.respondError(c, "ToggleOffering", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateDetails handles PUT /api/requests/session/:sessionID/details.
func (h *RequestHandler) UpdateDetails(c *gin.Context) {
	var input models.RequestDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.UpdateDetails(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, "UpdateDetails", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ApplyBundle handles PUT /api/requests/session/:sessionID/bundle. An
// empty bundleId clears the applied bundle.
func (h *RequestHandler) ApplyBundle(c *gin.Context) {
	var body struct {
		BundleID string `json:"bundleId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.ApplyBundle(c.Request.Context(), c.Param("sessionID"), body.BundleID)
	if err != nil {
		h.respondError(c, "ApplyBundle", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// StageSession handles POST /api/requests/session/:sessionID/stage.
func (h *RequestHandler) StageSession(c *gin.Context) {
	session, err := h.Svc.Stage(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "StageSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UnstageSession handles POST /api/requests/session/:sessionID/unstage.
func (h *RequestHandler) UnstageSession(c *gin.Context) {
	session, err := h.Svc.Unstage(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "UnstageSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSession handles POST /api/requests/session/:sessionID/confirm.
func (h *RequestHandler) ConfirmSession(c *gin.Context) {
	response, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "ConfirmSession", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CancelSession handles DELETE /api/requests/session/:sessionID.
func (h *RequestHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, "CancelSession", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CreateDepositIntent handles POST /api/requests/deposit-intent.
func (h *RequestHandler) CreateDepositIntent(c *gin.Context) {
	var body struct {
		FlowType  string `json:"flowType" binding:"required"`
		RequestID string `json:"requestId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	intent, err := h.Payments.CreateDepositIntent(c.Request.Context(), body.FlowType, body.RequestID)
	if err != nil {
		h.Logger.Error("CreateDepositIntent failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create deposit intent", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intent)
}

// respondError maps engine errors to HTTP responses. Flow errors carry
// stable codes the client can branch on.
func (h *RequestHandler) respondError(c *gin.Context, op string, err error) {
	if errors.Is(err, request.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return
	}
	if errors.Is(err, request.ErrUnknownFlow) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flow type", "message": err.Error()})
		return
	}
	if fe, ok := request.AsFlowError(err); ok {
		switch fe.Code {
		case request.CodeIncompleteSelection:
			c.JSON(http.StatusBadRequest, gin.H{"error": fe.Code, "message": fe.Message, "fields": fe.Fields})
		case request.CodeCatalogUnavailable:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": fe.Code, "message": fe.Message})
		case request.CodeSubmissionFailed:
			c.JSON(http.StatusBadGateway, gin.H{"error": fe.Code, "message": fe.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fe.Code, "message": fe.Message})
		}
		return
	}

	h.Logger.Error(op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "message": err.Error()})
}
