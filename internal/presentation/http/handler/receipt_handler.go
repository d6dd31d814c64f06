package handler

import (
	"github.com/epositalia/scontrino-api/internal/application/service"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/request"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Submit handles POST /api/invia-scontrino
func (h *ReceiptHandler) Submit(c *gin.Context) {
	var req request.SubmitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dati dello scontrino mancanti o incompleti")
		return
	}

	result, err := h.receiptService.SubmitReceipt(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	fields := gin.H{"id_scontrino": result.ReceiptID}
	if result.Message != "" {
		fields["messaggio"] = result.Message
	}
	if result.Raw != nil {
		fields["dati"] = result.Raw
	}
	response.Success(c, fields)
}

// Void handles POST /api/elimina-scontrino
func (h *ReceiptHandler) Void(c *gin.Context) {
	var req request.VoidReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Identificativo scontrino mancante")
		return
	}

	raw, err := h.receiptService.VoidReceipt(c.Request.Context(), req.IDScontrino)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"dati": raw})
}

// List handles GET /api/scontrini/:fiscal_id
func (h *ReceiptHandler) List(c *gin.Context) {
	raw, err := h.receiptService.ListReceipts(c.Request.Context(), c.Param("fiscal_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"dati": raw})
}
