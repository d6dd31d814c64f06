package repository

import (
	"context"

	"github.com/epositalia/scontrino-api/internal/domain/entity"
)

// BlockedAccountRepository defines the interface for deny-list data access
type BlockedAccountRepository interface {
	IsBlocked(ctx context.Context, fiscalID string) (bool, error)
	Block(ctx context.Context, account *entity.BlockedAccount) error
	Unblock(ctx context.Context, fiscalID string) error
	List(ctx context.Context) ([]entity.BlockedAccount, error)
}
