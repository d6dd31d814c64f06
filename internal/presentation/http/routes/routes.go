package routes

import (
	"time"

	"github.com/epositalia/scontrino-api/internal/config"
	"github.com/epositalia/scontrino-api/internal/presentation/http/handler"
	"github.com/epositalia/scontrino-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt  *handler.ReceiptHandler
	Company  *handler.CompanyHandler
	Denylist *handler.DenylistHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
	Log *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Liveness endpoints
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Backend attivo e funzionante")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		// Company configurations
		api.POST("/crea-azienda", h.Company.Create)
		api.GET("/utenti-configurati", h.Company.List)
		api.GET("/azienda/:fiscal_id", h.Company.Get)
		api.POST("/disattiva-scontrini/:fiscal_id", h.Company.DisableReceipts)
		api.POST("/attiva-scontrini/:fiscal_id", h.Company.EnableReceipts)

		// Receipts
		api.POST("/invia-scontrino", h.Receipt.Submit)
		api.POST("/elimina-scontrino", h.Receipt.Void)
		api.GET("/scontrini/:fiscal_id", h.Receipt.List)

		// Deny-list administration
		api.GET("/aziende-bloccate", h.Denylist.List)
		api.POST("/blocca-azienda/:fiscal_id", h.Denylist.Block)
		api.DELETE("/blocca-azienda/:fiscal_id", h.Denylist.Unblock)
	}

	return router
}
