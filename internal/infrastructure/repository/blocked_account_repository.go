package repository

import (
	"context"

	"github.com/epositalia/scontrino-api/internal/domain/entity"
	"github.com/epositalia/scontrino-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blockedAccountRepository struct {
	db *gorm.DB
}

// NewBlockedAccountRepository creates a new deny-list repository
func NewBlockedAccountRepository(db *gorm.DB) repository.BlockedAccountRepository {
	return &blockedAccountRepository{db: db}
}

// IsBlocked reports whether a fiscal id is on the deny-list
func (r *blockedAccountRepository) IsBlocked(ctx context.Context, fiscalID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.BlockedAccount{}).
		Where("fiscal_id = ?", fiscalID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Block adds a fiscal id to the deny-list; re-blocking is a no-op
func (r *blockedAccountRepository) Block(ctx context.Context, account *entity.BlockedAccount) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "fiscal_id"}}, DoNothing: true}).
		Create(account).Error
}

// Unblock removes a fiscal id from the deny-list
func (r *blockedAccountRepository) Unblock(ctx context.Context, fiscalID string) error {
	return r.db.WithContext(ctx).
		Where("fiscal_id = ?", fiscalID).
		Delete(&entity.BlockedAccount{}).Error
}

// List returns all blocked accounts
func (r *blockedAccountRepository) List(ctx context.Context) ([]entity.BlockedAccount, error) {
	var accounts []entity.BlockedAccount
	err := r.db.WithContext(ctx).Order("fiscal_id").Find(&accounts).Error
	return accounts, err
}
