package handler

import (
	"github.com/epositalia/scontrino-api/internal/application/service"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/request"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DenylistHandler handles deny-list admin HTTP requests
type DenylistHandler struct {
	denylistService *service.DenylistService
}

// NewDenylistHandler creates a new deny-list handler
func NewDenylistHandler(denylistService *service.DenylistService) *DenylistHandler {
	return &DenylistHandler{denylistService: denylistService}
}

// List handles GET /api/aziende-bloccate
func (h *DenylistHandler) List(c *gin.Context) {
	accounts, err := h.denylistService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"aziende": accounts})
}

// Block handles POST /api/blocca-azienda/:fiscal_id
func (h *DenylistHandler) Block(c *gin.Context) {
	var req request.BlockAccountRequest
	// The body is optional; a bare POST blocks without a reason.
	_ = c.ShouldBindJSON(&req)

	if err := h.denylistService.Block(c.Request.Context(), c.Param("fiscal_id"), req.Motivo); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"messaggio": "Azienda bloccata"})
}

// Unblock handles DELETE /api/blocca-azienda/:fiscal_id
func (h *DenylistHandler) Unblock(c *gin.Context) {
	if err := h.denylistService.Unblock(c.Request.Context(), c.Param("fiscal_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"messaggio": "Azienda sbloccata"})
}
