package database

import (
	"fmt"
	"strings"

	"github.com/epositalia/scontrino-api/internal/config"
	"github.com/epositalia/scontrino-api/internal/domain/entity"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	zap.L().Info("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.BlockedAccount{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDenylist inserts the configured blocked fiscal ids, skipping any that
// are already present so restarts do not duplicate rows.
func SeedDenylist(db *gorm.DB, cfg *config.DenylistConfig) error {
	for _, fiscalID := range cfg.FiscalIDs {
		fiscalID = strings.TrimSpace(fiscalID)
		if fiscalID == "" {
			continue
		}
		var existing entity.BlockedAccount
		if err := db.Where("fiscal_id = ?", fiscalID).First(&existing).Error; err != nil {
			if err := db.Create(&entity.BlockedAccount{FiscalID: fiscalID, Reason: "seeded from configuration"}).Error; err != nil {
				zap.L().Warn("failed to seed blocked account", zap.String("fiscal_id", fiscalID), zap.Error(err))
			}
		}
	}
	return nil
}
