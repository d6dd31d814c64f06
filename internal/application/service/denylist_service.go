package service

import (
	"context"

	"github.com/epositalia/scontrino-api/internal/domain/entity"
	"github.com/epositalia/scontrino-api/internal/domain/repository"
	"github.com/epositalia/scontrino-api/pkg/apperror"
)

// DenylistService manages the accounts barred from submitting receipts.
type DenylistService struct {
	blockedRepo repository.BlockedAccountRepository
}

// NewDenylistService creates a new deny-list service
func NewDenylistService(blockedRepo repository.BlockedAccountRepository) *DenylistService {
	return &DenylistService{blockedRepo: blockedRepo}
}

// Block adds a fiscal id to the deny-list.
func (s *DenylistService) Block(ctx context.Context, fiscalID, reason string) error {
	if fiscalID == "" {
		return apperror.NewValidationError("Partita IVA mancante")
	}
	return s.blockedRepo.Block(ctx, &entity.BlockedAccount{
		FiscalID: fiscalID,
		Reason:   reason,
	})
}

// Unblock removes a fiscal id from the deny-list.
func (s *DenylistService) Unblock(ctx context.Context, fiscalID string) error {
	if fiscalID == "" {
		return apperror.NewValidationError("Partita IVA mancante")
	}
	return s.blockedRepo.Unblock(ctx, fiscalID)
}

// List returns all blocked accounts.
func (s *DenylistService) List(ctx context.Context) ([]entity.BlockedAccount, error) {
	return s.blockedRepo.List(ctx)
}
