package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/epositalia/scontrino-api/internal/config"
	"github.com/epositalia/scontrino-api/internal/domain/gateway"
	"github.com/epositalia/scontrino-api/pkg/apperror"
	"go.uber.org/zap"
)

const (
	configurationsPath = "/IT-configurations"
	receiptsPath       = "/IT-receipts"
)

// Client talks to the OpenAPI fiscal service with a static bearer credential.
// It implements gateway.FiscalGateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a fiscal API client from the upstream configuration.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// doJSON issues a single upstream call and returns the status code with the
// raw body. Transport failures surface as 500 upstream errors.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload interface{}) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, apperror.NewUpstreamError(http.StatusInternalServerError, err.Error(), nil)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, nil, apperror.NewUpstreamError(http.StatusInternalServerError, err.Error(), nil)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Error("upstream call failed", zap.String("path", path), zap.Error(err))
		return 0, nil, apperror.NewUpstreamError(http.StatusInternalServerError, err.Error(), nil)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, apperror.NewUpstreamError(http.StatusInternalServerError, err.Error(), nil)
	}

	return resp.StatusCode, raw, nil
}

// mapError converts a non-2xx upstream response into an AppError carrying
// the upstream status, an extracted message and the raw body as detail.
func mapError(status int, raw []byte) error {
	message, detail := extractMessage(raw, fmt.Sprintf("upstream returned status %d", status))
	zap.L().Error("upstream error", zap.Int("status", status), zap.String("message", message))
	return apperror.NewUpstreamError(status, message, detail)
}

func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// CreateConfiguration registers a company configuration. An upstream 409 is
// reported as success with AlreadyExists set: duplicate registration is not
// a failure.
func (c *Client) CreateConfiguration(ctx context.Context, payload *gateway.ConfigurationPayload) (*gateway.CreateConfigurationResult, error) {
	status, raw, err := c.doJSON(ctx, http.MethodPost, configurationsPath, nil, payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		return &gateway.CreateConfigurationResult{AlreadyExists: true}, nil
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}

	var decoded struct {
		ConfigurationID string `json:"configuration_id"`
		TaxID           string `json:"tax_id"`
	}
	_ = json.Unmarshal(raw, &decoded)

	id := decoded.ConfigurationID
	if id == "" {
		id = decoded.TaxID
	}
	return &gateway.CreateConfigurationResult{
		ConfigurationID: id,
		Raw:             json.RawMessage(raw),
	}, nil
}

// SubmitReceipt sends a normalized receipt and extracts the upstream record
// identifier from the response.
func (c *Client) SubmitReceipt(ctx context.Context, payload *gateway.ReceiptPayload) (*gateway.SubmitResult, error) {
	status, raw, err := c.doJSON(ctx, http.MethodPost, receiptsPath, nil, payload)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}

	var decoded struct {
		ID        string `json:"id"`
		ReceiptID string `json:"receipt_id"`
	}
	_ = json.Unmarshal(raw, &decoded)

	id := decoded.ID
	if id == "" {
		id = decoded.ReceiptID
	}
	return &gateway.SubmitResult{
		ReceiptID: id,
		Raw:       json.RawMessage(raw),
	}, nil
}

// VoidReceipt deletes a receipt by its upstream identifier.
func (c *Client) VoidReceipt(ctx context.Context, receiptID string) (json.RawMessage, error) {
	status, raw, err := c.doJSON(ctx, http.MethodDelete, receiptsPath+"/"+url.PathEscape(receiptID), nil, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}
	return json.RawMessage(raw), nil
}

// ListConfigurations returns every configuration the credential can see.
func (c *Client) ListConfigurations(ctx context.Context) (json.RawMessage, error) {
	status, raw, err := c.doJSON(ctx, http.MethodGet, configurationsPath, nil, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}
	return json.RawMessage(raw), nil
}

// ListReceipts returns the receipts recorded for a fiscal id.
func (c *Client) ListReceipts(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	query := url.Values{"configuration_tax_id": []string{fiscalID}}
	status, raw, err := c.doJSON(ctx, http.MethodGet, receiptsPath, query, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}
	return json.RawMessage(raw), nil
}

// GetConfiguration fetches a single configuration by fiscal id.
func (c *Client) GetConfiguration(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	status, raw, err := c.doJSON(ctx, http.MethodGet, configurationsPath+"/"+url.PathEscape(fiscalID), nil, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}
	return json.RawMessage(raw), nil
}

// SetReceiptsEnabled toggles receipt issuance on a configuration. Enabling
// requires the Fisconline credential triple; disabling does not.
func (c *Client) SetReceiptsEnabled(ctx context.Context, fiscalID string, enabled bool, creds *gateway.FisconlineCredentials) (json.RawMessage, error) {
	patch := map[string]interface{}{"receipts": enabled}
	if creds != nil {
		patch["fisconline_username"] = creds.Username
		patch["fisconline_password"] = creds.Password
		patch["fisconline_pin"] = creds.PIN
	}

	status, raw, err := c.doJSON(ctx, http.MethodPatch, configurationsPath+"/"+url.PathEscape(fiscalID), nil, patch)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, mapError(status, raw)
	}
	return json.RawMessage(raw), nil
}
