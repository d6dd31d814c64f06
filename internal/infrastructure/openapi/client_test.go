package openapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/epositalia/scontrino-api/internal/config"
	"github.com/epositalia/scontrino-api/internal/domain/gateway"
	"github.com/epositalia/scontrino-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.UpstreamConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func samplePayload() *gateway.ReceiptPayload {
	return &gateway.ReceiptPayload{
		ConfigurationTaxID: "12345678901",
		ReceiptDate:        "2026-08-30",
		ReceiptTime:        "10:30",
		Items: []gateway.ReceiptItem{{
			Quantity:    1,
			Description: "Caffè",
			UnitPrice:   decimal.RequireFromString("1.10"),
			VatRateCode: "22",
		}},
		TotalAmount:       decimal.RequireFromString("1.10"),
		CashPaymentAmount: decimal.RequireFromString("1.10"),
	}
}

func TestSubmitReceipt_SendsBearerAndExtractsID(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"rcpt-42","status":"issued"}`))
	})

	result, err := client.SubmitReceipt(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/IT-receipts", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "rcpt-42", result.ReceiptID)
	assert.JSONEq(t, `{"id":"rcpt-42","status":"issued"}`, string(result.Raw))
}

func TestSubmitReceipt_ReceiptIDFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"receipt_id":"rcpt-7"}`))
	})

	result, err := client.SubmitReceipt(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "rcpt-7", result.ReceiptID)
}

func TestSubmitReceipt_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"vat_rate_code not valid"}}`))
	})

	_, err := client.SubmitReceipt(context.Background(), samplePayload())
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "vat_rate_code not valid", appErr.Message)
	assert.NotNil(t, appErr.Detail)
}

func TestSubmitReceipt_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(&config.UpstreamConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	})
	server.Close()

	_, err := client.SubmitReceipt(context.Background(), samplePayload())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperror.GetAppError(err).Code)
}

func TestCreateConfiguration_ConflictIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"configuration already exists"}`))
	})

	result, err := client.CreateConfiguration(context.Background(), &gateway.ConfigurationPayload{TaxID: "12345678901"})
	require.NoError(t, err, "409 on configuration create is not a failure")
	assert.True(t, result.AlreadyExists)
}

func TestCreateConfiguration_IDFallsBackToTaxID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/IT-configurations", r.URL.Path)
		w.Write([]byte(`{"tax_id":"12345678901"}`))
	})

	result, err := client.CreateConfiguration(context.Background(), &gateway.ConfigurationPayload{TaxID: "12345678901"})
	require.NoError(t, err)
	assert.Equal(t, "12345678901", result.ConfigurationID)
}

func TestVoidReceipt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/IT-receipts/rcpt-42", r.URL.Path)
		w.Write([]byte(`{"deleted":true}`))
	})

	raw, err := client.VoidReceipt(context.Background(), "rcpt-42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":true}`, string(raw))
}

func TestListReceipts_FiltersByFiscalID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/IT-receipts", r.URL.Path)
		assert.Equal(t, "12345678901", r.URL.Query().Get("configuration_tax_id"))
		w.Write([]byte(`[{"id":"rcpt-1"}]`))
	})

	raw, err := client.ListReceipts(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"rcpt-1"}]`, string(raw))
}

func TestSetReceiptsEnabled(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/IT-configurations/12345678901", r.URL.Path)
		gotBody = map[string]interface{}{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	})

	_, err := client.SetReceiptsEnabled(context.Background(), "12345678901", true, &gateway.FisconlineCredentials{
		Username: "user",
		Password: "pass",
		PIN:      "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, true, gotBody["receipts"])
	assert.Equal(t, "user", gotBody["fisconline_username"])
	assert.Equal(t, "1234", gotBody["fisconline_pin"])

	_, err = client.SetReceiptsEnabled(context.Background(), "12345678901", false, nil)
	require.NoError(t, err)
	assert.Equal(t, false, gotBody["receipts"])
	assert.NotContains(t, gotBody, "fisconline_username")
}
