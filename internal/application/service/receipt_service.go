package service

import (
	"context"
	"encoding/json"

	"github.com/epositalia/scontrino-api/internal/domain/gateway"
	"github.com/epositalia/scontrino-api/internal/domain/repository"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/request"
	"github.com/epositalia/scontrino-api/pkg/apperror"
)

// MessageNoFiscalItems is returned when filtering leaves nothing to submit.
const MessageNoFiscalItems = "nessun articolo fiscalmente rilevante"

// ReceiptService handles receipt submission, voiding and listing.
type ReceiptService struct {
	fiscalGateway gateway.FiscalGateway
	blockedRepo   repository.BlockedAccountRepository
	normalizer    *ReceiptNormalizer
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	fiscalGateway gateway.FiscalGateway,
	blockedRepo repository.BlockedAccountRepository,
	normalizer *ReceiptNormalizer,
) *ReceiptService {
	return &ReceiptService{
		fiscalGateway: fiscalGateway,
		blockedRepo:   blockedRepo,
		normalizer:    normalizer,
	}
}

// SubmitReceiptResult is the outcome of a submission. ReceiptID is nil when
// nothing fiscally relevant was left to submit.
type SubmitReceiptResult struct {
	ReceiptID *string
	Message   string
	Raw       json.RawMessage
}

// SubmitReceipt validates, normalizes and forwards a receipt. Blocked
// accounts and all-informational receipts never reach the upstream.
func (s *ReceiptService) SubmitReceipt(ctx context.Context, req *request.SubmitReceiptRequest) (*SubmitReceiptResult, error) {
	if err := s.normalizer.Validate(req); err != nil {
		return nil, err
	}

	blocked, err := s.blockedRepo.IsBlocked(ctx, req.PartitaIVA)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperror.NewPolicyBlockedError(req.PartitaIVA)
	}

	outcome, err := s.normalizer.Normalize(req)
	if err != nil {
		return nil, err
	}
	if outcome.Terminal {
		return &SubmitReceiptResult{Message: MessageNoFiscalItems}, nil
	}

	result, err := s.fiscalGateway.SubmitReceipt(ctx, outcome.Payload)
	if err != nil {
		return nil, err
	}

	return &SubmitReceiptResult{
		ReceiptID: &result.ReceiptID,
		Raw:       result.Raw,
	}, nil
}

// VoidReceipt deletes a receipt by its upstream identifier.
func (s *ReceiptService) VoidReceipt(ctx context.Context, receiptID string) (json.RawMessage, error) {
	if receiptID == "" {
		return nil, apperror.NewValidationError("Identificativo scontrino mancante")
	}
	return s.fiscalGateway.VoidReceipt(ctx, receiptID)
}

// ListReceipts returns the receipts recorded upstream for a fiscal id.
func (s *ReceiptService) ListReceipts(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	if fiscalID == "" {
		return nil, apperror.NewValidationError("Partita IVA mancante")
	}
	return s.fiscalGateway.ListReceipts(ctx, fiscalID)
}
