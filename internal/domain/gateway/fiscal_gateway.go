package gateway

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReceiptItem is one fiscally relevant line item in the upstream schema.
type ReceiptItem struct {
	Quantity      int             `json:"quantity"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	VatRateCode   string          `json:"vat_rate_code"`
	Discount      decimal.Decimal `json:"discount"`
	Complimentary bool            `json:"complimentary"`
	SKU           string          `json:"sku,omitempty"`
}

// ReceiptPayload is the document sent to the upstream receipt resource.
// All amounts are rounded to two decimal places before the payload is built.
type ReceiptPayload struct {
	ConfigurationTaxID string `json:"configuration_tax_id"`
	ReceiptDate        string `json:"receipt_date"`
	ReceiptTime        string `json:"receipt_time"`

	CustomerName    string `json:"customer_name,omitempty"`
	CustomerTaxID   string `json:"customer_tax_id,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`

	Items []ReceiptItem `json:"items"`

	TotalAmount                   decimal.Decimal `json:"total_amount"`
	CashPaymentAmount             decimal.Decimal `json:"cash_payment_amount"`
	ElectronicPaymentAmount       decimal.Decimal `json:"electronic_payment_amount"`
	TicketRestaurantPaymentAmount decimal.Decimal `json:"ticket_restaurant_payment_amount"`
	TicketRestaurantQuantity      int             `json:"ticket_restaurant_quantity"`
	GoodsUncollectedAmount        decimal.Decimal `json:"goods_uncollected_amount"`
	ServicesUncollectedAmount     decimal.Decimal `json:"services_uncollected_amount"`

	InvoiceIssuing bool     `json:"invoice_issuing"`
	Tags           []string `json:"tags,omitempty"`
}

// FisconlineCredentials is the credential triple the upstream requires to
// re-enable receipt issuance on a configuration.
type FisconlineCredentials struct {
	Username string `json:"fisconline_username"`
	Password string `json:"fisconline_password"`
	PIN      string `json:"fisconline_pin"`
}

// ConfigurationPayload is the document sent to the upstream configuration
// resource when a company is registered.
type ConfigurationPayload struct {
	TaxID        string `json:"tax_id"`
	Email        string `json:"email,omitempty"`
	CompanyName  string `json:"company_name"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	FiscalID     string `json:"fiscal_id"`
	Address      string `json:"address"`
	Receipts     bool   `json:"receipts"`

	FisconlineUsername string `json:"fisconline_username,omitempty"`
	FisconlinePassword string `json:"fisconline_password,omitempty"`
	FisconlinePIN      string `json:"fisconline_pin,omitempty"`
}

// SubmitResult carries the upstream response to a receipt submission.
type SubmitResult struct {
	ReceiptID string
	Raw       json.RawMessage
}

// CreateConfigurationResult carries the upstream response to a configuration
// create. AlreadyExists marks the upstream 409 case, which is not an error.
type CreateConfigurationResult struct {
	AlreadyExists   bool
	ConfigurationID string
	Raw             json.RawMessage
}

// FiscalGateway is the outbound port towards the fiscal API. Every method
// issues exactly one HTTP call; failures come back as *apperror.AppError
// with the upstream status and an extracted message.
type FiscalGateway interface {
	CreateConfiguration(ctx context.Context, payload *ConfigurationPayload) (*CreateConfigurationResult, error)
	SubmitReceipt(ctx context.Context, payload *ReceiptPayload) (*SubmitResult, error)
	VoidReceipt(ctx context.Context, receiptID string) (json.RawMessage, error)
	ListConfigurations(ctx context.Context) (json.RawMessage, error)
	ListReceipts(ctx context.Context, fiscalID string) (json.RawMessage, error)
	GetConfiguration(ctx context.Context, fiscalID string) (json.RawMessage, error)
	SetReceiptsEnabled(ctx context.Context, fiscalID string, enabled bool, creds *FisconlineCredentials) (json.RawMessage, error)
}
