package handler

import (
	"github.com/epositalia/scontrino-api/internal/application/service"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/request"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company configuration HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create handles POST /api/crea-azienda
func (h *CompanyHandler) Create(c *gin.Context) {
	var req request.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tutti i campi fiscali sono obbligatori")
		return
	}

	result, err := h.companyService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.AlreadyExists {
		response.Success(c, gin.H{"messaggio": "Azienda già presente su Openapi"})
		return
	}

	response.Success(c, gin.H{
		"company_id":  result.CompanyID,
		"datiOpenapi": result.Raw,
	})
}

// List handles GET /api/utenti-configurati
func (h *CompanyHandler) List(c *gin.Context) {
	raw, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"dati": raw})
}

// Get handles GET /api/azienda/:fiscal_id
func (h *CompanyHandler) Get(c *gin.Context) {
	raw, err := h.companyService.GetCompany(c.Request.Context(), c.Param("fiscal_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"dati": raw})
}

// DisableReceipts handles POST /api/disattiva-scontrini/:fiscal_id
func (h *CompanyHandler) DisableReceipts(c *gin.Context) {
	raw, err := h.companyService.DisableReceipts(c.Request.Context(), c.Param("fiscal_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"dati": raw})
}

// EnableReceipts handles POST /api/attiva-scontrini/:fiscal_id
func (h *CompanyHandler) EnableReceipts(c *gin.Context) {
	var req request.EnableReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Credenziali Fisconline obbligatorie")
		return
	}

	raw, err := h.companyService.EnableReceipts(c.Request.Context(), c.Param("fiscal_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"dati": raw})
}
