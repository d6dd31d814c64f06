package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/epositalia/scontrino-api/internal/domain/entity"
	"github.com/epositalia/scontrino-api/internal/domain/gateway"
	"github.com/epositalia/scontrino-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records upstream calls so tests can assert the upstream was
// (not) contacted.
type fakeGateway struct {
	submitCalls int
	voidCalls   int
	listCalls   int

	submitResult *gateway.SubmitResult
	submitErr    error
}

func (f *fakeGateway) CreateConfiguration(ctx context.Context, payload *gateway.ConfigurationPayload) (*gateway.CreateConfigurationResult, error) {
	return &gateway.CreateConfigurationResult{}, nil
}

func (f *fakeGateway) SubmitReceipt(ctx context.Context, payload *gateway.ReceiptPayload) (*gateway.SubmitResult, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.submitResult != nil {
		return f.submitResult, nil
	}
	return &gateway.SubmitResult{ReceiptID: "rcpt-1", Raw: json.RawMessage(`{"id":"rcpt-1"}`)}, nil
}

func (f *fakeGateway) VoidReceipt(ctx context.Context, receiptID string) (json.RawMessage, error) {
	f.voidCalls++
	return json.RawMessage(`{"deleted":true}`), nil
}

func (f *fakeGateway) ListConfigurations(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (f *fakeGateway) ListReceipts(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	f.listCalls++
	return json.RawMessage(`[]`), nil
}

func (f *fakeGateway) GetConfiguration(ctx context.Context, fiscalID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeGateway) SetReceiptsEnabled(ctx context.Context, fiscalID string, enabled bool, creds *gateway.FisconlineCredentials) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

// fakeBlockedRepo is an in-memory deny-list.
type fakeBlockedRepo struct {
	blocked map[string]bool
}

func newFakeBlockedRepo(fiscalIDs ...string) *fakeBlockedRepo {
	m := make(map[string]bool)
	for _, id := range fiscalIDs {
		m[id] = true
	}
	return &fakeBlockedRepo{blocked: m}
}

func (r *fakeBlockedRepo) IsBlocked(ctx context.Context, fiscalID string) (bool, error) {
	return r.blocked[fiscalID], nil
}

func (r *fakeBlockedRepo) Block(ctx context.Context, account *entity.BlockedAccount) error {
	r.blocked[account.FiscalID] = true
	return nil
}

func (r *fakeBlockedRepo) Unblock(ctx context.Context, fiscalID string) error {
	delete(r.blocked, fiscalID)
	return nil
}

func (r *fakeBlockedRepo) List(ctx context.Context) ([]entity.BlockedAccount, error) {
	var accounts []entity.BlockedAccount
	for id := range r.blocked {
		accounts = append(accounts, entity.BlockedAccount{FiscalID: id})
	}
	return accounts, nil
}

func newReceiptService(gw *fakeGateway, repo *fakeBlockedRepo) *ReceiptService {
	return NewReceiptService(gw, repo, NewReceiptNormalizer(PolicyItemized))
}

func TestSubmitReceipt_Success(t *testing.T) {
	gw := &fakeGateway{}
	svc := newReceiptService(gw, newFakeBlockedRepo())

	req := mustReceipt(t, `{
		"partitaIva": "12345678901",
		"totale": 5.00,
		"prodotti": [{"descrizione": "Coffee", "prezzo": 2.50, "quantita": 2}],
		"pagamenti": {"contanti": 5.00}
	}`)

	result, err := svc.SubmitReceipt(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result.ReceiptID)
	assert.Equal(t, "rcpt-1", *result.ReceiptID)
	assert.Equal(t, 1, gw.submitCalls)
}

func TestSubmitReceipt_ValidationFailsBeforeUpstream(t *testing.T) {
	gw := &fakeGateway{}
	svc := newReceiptService(gw, newFakeBlockedRepo())

	_, err := svc.SubmitReceipt(context.Background(), mustReceipt(t, `{"prodotti":[{"prezzo":1}]}`))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, gw.submitCalls)
}

func TestSubmitReceipt_BlockedAccount(t *testing.T) {
	gw := &fakeGateway{}
	svc := newReceiptService(gw, newFakeBlockedRepo("12345678901"))

	req := mustReceipt(t, `{
		"partitaIva": "12345678901",
		"totale": 5.00,
		"prodotti": [{"descrizione": "Coffee", "prezzo": 5.00}]
	}`)

	_, err := svc.SubmitReceipt(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, gw.submitCalls, "blocked accounts must never reach the upstream")
}

func TestSubmitReceipt_AllFilteredShortCircuits(t *testing.T) {
	gw := &fakeGateway{}
	svc := newReceiptService(gw, newFakeBlockedRepo())

	req := mustReceipt(t, `{
		"partitaIva": "12345678901",
		"prodotti": [
			{"descrizione": "nota 1", "prezzo": 0},
			{"descrizione": "nota 2", "prezzo": 0}
		]
	}`)

	result, err := svc.SubmitReceipt(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, result.ReceiptID)
	assert.Equal(t, MessageNoFiscalItems, result.Message)
	assert.Equal(t, 0, gw.submitCalls, "nothing fiscally relevant: no upstream call")
}

func TestSubmitReceipt_UpstreamErrorRelayed(t *testing.T) {
	gw := &fakeGateway{submitErr: apperror.NewUpstreamError(422, "invalid vat code", nil)}
	svc := newReceiptService(gw, newFakeBlockedRepo())

	req := mustReceipt(t, `{
		"partitaIva": "12345678901",
		"totale": 5.00,
		"prodotti": [{"descrizione": "Coffee", "prezzo": 5.00}]
	}`)

	_, err := svc.SubmitReceipt(context.Background(), req)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, "invalid vat code", appErr.Message)
}

func TestVoidReceipt(t *testing.T) {
	gw := &fakeGateway{}
	svc := newReceiptService(gw, newFakeBlockedRepo())

	_, err := svc.VoidReceipt(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, gw.voidCalls)

	raw, err := svc.VoidReceipt(context.Background(), "rcpt-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":true}`, string(raw))
	assert.Equal(t, 1, gw.voidCalls)
}

func TestListReceipts(t *testing.T) {
	gw := &fakeGateway{}
	svc := newReceiptService(gw, newFakeBlockedRepo())

	_, err := svc.ListReceipts(context.Background(), "")
	require.Error(t, err)

	raw, err := svc.ListReceipts(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
	assert.Equal(t, 1, gw.listCalls)
}
