package service

import (
	"context"
	"encoding/json"

	"github.com/epositalia/scontrino-api/internal/domain/gateway"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/request"
	"github.com/epositalia/scontrino-api/pkg/apperror"
)

const defaultContactEmail = "no-reply@azienda.it"

// CompanyService relays company configuration operations to the fiscal API.
type CompanyService struct {
	fiscalGateway gateway.FiscalGateway
}

// NewCompanyService creates a new company service
func NewCompanyService(fiscalGateway gateway.FiscalGateway) *CompanyService {
	return &CompanyService{fiscalGateway: fiscalGateway}
}

// CreateCompanyResult is the outcome of a configuration create.
type CreateCompanyResult struct {
	AlreadyExists bool
	CompanyID     string
	Raw           json.RawMessage
}

// CreateCompany registers a company configuration upstream. An upstream
// duplicate is a success, not an error.
func (s *CompanyService) CreateCompany(ctx context.Context, req *request.CreateCompanyRequest) (*CreateCompanyResult, error) {
	if req.PartitaIVA == "" || req.RagioneSociale == "" || req.CodiceFiscale == "" || req.Indirizzo == "" {
		return nil, apperror.NewValidationError("Tutti i campi fiscali sono obbligatori")
	}

	contactEmail := req.Email
	if contactEmail == "" {
		contactEmail = defaultContactEmail
	}

	payload := &gateway.ConfigurationPayload{
		TaxID:        req.PartitaIVA,
		Email:        req.Email,
		CompanyName:  req.RagioneSociale,
		Name:         req.RagioneSociale,
		ContactEmail: contactEmail,
		ContactPhone: req.Telefono,
		FiscalID:     req.CodiceFiscale,
		Address:      req.Indirizzo,
		Receipts:     true,

		FisconlineUsername: req.UsernameFisconline,
		FisconlinePassword: req.PasswordFisconline,
		FisconlinePIN:      req.PinFisconline,
	}

	result, err := s.fiscalGateway.CreateConfiguration(ctx, payload)
	if err != nil {
		return nil, err
	}

	return &CreateCompanyResult{
		AlreadyExists: result.AlreadyExists,
		CompanyID:     result.ConfigurationID,
		Raw:           result.Raw,
	}, nil
}

// ListCompanies returns every configuration registered upstream.
func (s *CompanyService) ListCompanies(ctx context.Context) (json.RawMessage, error) {
	return s.fiscalGateway.ListConfigurations(ctx)
}

// GetCompany fetches one configuration by fiscal id.
func (s *CompanyService) GetCompany(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	if fiscalID == "" {
		return nil, apperror.NewValidationError("Partita IVA mancante")
	}
	return s.fiscalGateway.GetConfiguration(ctx, fiscalID)
}

// DisableReceipts turns off receipt issuance for a configuration.
func (s *CompanyService) DisableReceipts(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	if fiscalID == "" {
		return nil, apperror.NewValidationError("Partita IVA mancante")
	}
	return s.fiscalGateway.SetReceiptsEnabled(ctx, fiscalID, false, nil)
}

// EnableReceipts turns receipt issuance back on. The upstream requires the
// full Fisconline credential triple for this.
func (s *CompanyService) EnableReceipts(ctx context.Context, fiscalID string, req *request.EnableReceiptsRequest) (json.RawMessage, error) {
	if fiscalID == "" {
		return nil, apperror.NewValidationError("Partita IVA mancante")
	}
	if req == nil || req.UsernameFisconline == "" || req.PasswordFisconline == "" || req.PinFisconline == "" {
		return nil, apperror.NewValidationError("Credenziali Fisconline obbligatorie")
	}

	creds := &gateway.FisconlineCredentials{
		Username: req.UsernameFisconline,
		Password: req.PasswordFisconline,
		PIN:      req.PinFisconline,
	}
	return s.fiscalGateway.SetReceiptsEnabled(ctx, fiscalID, true, creds)
}
