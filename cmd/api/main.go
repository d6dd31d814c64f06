package main

import (
	"log"

	"github.com/epositalia/scontrino-api/internal/application/service"
	"github.com/epositalia/scontrino-api/internal/config"
	"github.com/epositalia/scontrino-api/internal/infrastructure/database"
	"github.com/epositalia/scontrino-api/internal/infrastructure/openapi"
	"github.com/epositalia/scontrino-api/internal/infrastructure/repository"
	"github.com/epositalia/scontrino-api/internal/presentation/http/handler"
	"github.com/epositalia/scontrino-api/internal/presentation/http/routes"
	"github.com/epositalia/scontrino-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLog, err := logger.New(logger.Config{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zapLog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed the deny-list from configuration
	if err := database.SeedDenylist(db, &cfg.Denylist); err != nil {
		zapLog.Warn("failed to seed deny-list", zap.Error(err))
	}

	// Initialize repositories
	blockedRepo := repository.NewBlockedAccountRepository(db)

	// Initialize the upstream gateway
	fiscalGateway := openapi.NewClient(&cfg.Upstream)

	// Initialize services
	normalizer := service.NewReceiptNormalizer(cfg.Payment.Policy)
	receiptService := service.NewReceiptService(fiscalGateway, blockedRepo, normalizer)
	companyService := service.NewCompanyService(fiscalGateway)
	denylistService := service.NewDenylistService(blockedRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Receipt:  handler.NewReceiptHandler(receiptService),
		Company:  handler.NewCompanyHandler(companyService),
		Denylist: handler.NewDenylistHandler(denylistService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
		Log: zapLog,
	})

	port := cfg.App.Port
	if port == "" {
		port = "3000"
	}

	zapLog.Info("starting server",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
	)

	if err := router.Run(":" + port); err != nil {
		zapLog.Fatal("failed to start server", zap.Error(err))
	}
}
