package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"walletfeed/internal/domain"
	"walletfeed/internal/wallet"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Snapshot() wallet.View {
	args := m.Called()
	view, _ := args.Get(0).(wallet.View)
	return view
}

func (m *MockService) CurrentPrice() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockService) Convert(pa domain.PaymentAmount, to domain.WalletCurrency) domain.PaymentAmount {
	args := m.Called(pa, to)
	res, _ := args.Get(0).(domain.PaymentAmount)
	return res
}

func (m *MockService) ConvertToPrimary(pa domain.PaymentAmount) domain.PaymentAmount {
	args := m.Called(pa)
	res, _ := args.Get(0).(domain.PaymentAmount)
	return res
}

func (m *MockService) PrimaryCurrency() domain.WalletCurrency {
	args := m.Called()
	c, _ := args.Get(0).(domain.WalletCurrency)
	return c
}

func (m *MockService) SetPrimaryCurrency(c domain.WalletCurrency) {
	m.Called(c)
}

// --- GetSnapshot ---

func TestHandler_GetSnapshot_KnownPrice(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	usdPerSat := "0.00640000"
	mockService.On("Snapshot").Return(wallet.View{
		Price:           0.64,
		UsdPerBtc:       domain.PaymentAmount{Amount: 64000000, Currency: domain.CurrencyUSD},
		UsdPerSat:       &usdPerSat,
		PrimaryCurrency: domain.CurrencyUSD,
		Balances: map[domain.WalletCurrency]int64{
			domain.CurrencyUSD: 100,
			domain.CurrencyBTC: 500,
		},
		LnUpdate: &domain.LnUpdate{PaymentHash: "hash-1", Status: "PAID"},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/snapshot", nil)
	rec := httptest.NewRecorder()
	h.GetSnapshot(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body GetSnapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.UsdPerBtc)
	require.Equal(t, 64000000.0, *body.UsdPerBtc)
	require.NotNil(t, body.UsdPerSat)
	require.Equal(t, "0.00640000", *body.UsdPerSat)
	require.Equal(t, "USD", body.PrimaryCurrency)

	// BTC first, then USD
	require.Len(t, body.Balances, 2)
	require.Equal(t, BalanceResponse{Currency: "BTC", Balance: 500}, body.Balances[0])
	require.Equal(t, BalanceResponse{Currency: "USD", Balance: 100}, body.Balances[1])

	require.NotNil(t, body.LnUpdate)
	require.Equal(t, "hash-1", body.LnUpdate.PaymentHash)
	require.Nil(t, body.OnChainUpdate)
	require.Nil(t, body.IntraLedgerUpdate)
}

func TestHandler_GetSnapshot_UnknownPrice_NullReadouts(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	mockService.On("Snapshot").Return(wallet.View{
		UsdPerBtc:       domain.PaymentAmount{Amount: math.NaN(), Currency: domain.CurrencyUSD},
		UsdPerSat:       nil,
		PrimaryCurrency: domain.CurrencyUSD,
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/snapshot", nil)
	rec := httptest.NewRecorder()
	h.GetSnapshot(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body GetSnapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Nil(t, body.UsdPerBtc)
	require.Nil(t, body.UsdPerSat)
	require.Empty(t, body.Balances)
}

// --- GetPrice ---

func TestHandler_GetPrice_KnownPrice(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	mockService.On("CurrentPrice").Return(0.00064).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/price", nil)
	rec := httptest.NewRecorder()
	h.GetPrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body GetPriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 0.00064, body.Price)
	require.NotNil(t, body.UsdPerBtc)
	require.InDelta(t, 64000.0, *body.UsdPerBtc, 1e-6)
	require.NotNil(t, body.UsdPerSat)
	require.Equal(t, "0.00000640", *body.UsdPerSat)
	require.NotNil(t, body.Formatted)
	require.Equal(t, "64000.00", *body.Formatted)
}

func TestHandler_GetPrice_UnknownPrice(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	mockService.On("CurrentPrice").Return(0.0).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/price", nil)
	rec := httptest.NewRecorder()
	h.GetPrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body GetPriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 0.0, body.Price)
	require.Nil(t, body.UsdPerBtc)
	require.Nil(t, body.UsdPerSat)
	require.Nil(t, body.Formatted)
}

// --- Convert ---

func TestHandler_Convert_ExplicitTarget(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	want := domain.PaymentAmount{Amount: 640, Currency: domain.CurrencyUSD}
	mockService.On("Convert",
		domain.PaymentAmount{Amount: 1000, Currency: domain.CurrencyBTC},
		domain.CurrencyUSD,
	).Return(want).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/convert?amount=1000&from=btc&to=usd", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int64(640), body.Amount)
	require.Equal(t, "USD", body.Currency)
	mockService.AssertExpectations(t)
}

func TestHandler_Convert_DefaultsToPrimary(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	want := domain.PaymentAmount{Amount: 640, Currency: domain.CurrencyUSD}
	mockService.On("ConvertToPrimary",
		domain.PaymentAmount{Amount: 1000, Currency: domain.CurrencyBTC},
	).Return(want).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/convert?amount=1000&from=BTC", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
	mockService.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
}

func TestHandler_Convert_BadAmount(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/wallet/convert?amount=abc&from=BTC&to=USD", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "amount must be an integer", body.Error)
}

func TestHandler_Convert_BadFrom(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/wallet/convert?amount=10&from=EUR&to=USD", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "from must be BTC or USD", body.Error)
}

func TestHandler_Convert_BadTo(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/wallet/convert?amount=10&from=BTC&to=EUR", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Convert_UnknownPrice_ServiceUnavailable(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	mockService.On("Convert", mock.Anything, mock.Anything).Return(
		domain.PaymentAmount{Amount: math.NaN(), Currency: domain.CurrencyUSD},
	).Once()

	req := httptest.NewRequest(http.MethodGet, "/wallet/convert?amount=1000&from=BTC&to=USD", nil)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "price not yet available", body.Error)
}

// --- SetPrimaryCurrency ---

func TestHandler_SetPrimaryCurrency_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	mockService.On("SetPrimaryCurrency", domain.CurrencyBTC).Return().Once()
	mockService.On("PrimaryCurrency").Return(domain.CurrencyBTC).Once()

	req := httptest.NewRequest(http.MethodPut, "/wallet/primary-currency", bytes.NewBufferString(`{"currency": "btc"}`))
	rec := httptest.NewRecorder()
	h.SetPrimaryCurrency(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body SetPrimaryCurrencyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "BTC", body.Currency)
	mockService.AssertExpectations(t)
}

func TestHandler_SetPrimaryCurrency_InvalidBody(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	req := httptest.NewRequest(http.MethodPut, "/wallet/primary-currency", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()
	h.SetPrimaryCurrency(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "SetPrimaryCurrency", mock.Anything)
}

func TestHandler_SetPrimaryCurrency_UnknownField(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	req := httptest.NewRequest(http.MethodPut, "/wallet/primary-currency", bytes.NewBufferString(`{"currency": "USD", "extra": 1}`))
	rec := httptest.NewRecorder()
	h.SetPrimaryCurrency(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SetPrimaryCurrency_InvalidCurrency(t *testing.T) {
	mockService := new(MockService)
	h := NewWalletHandler(mockService)

	req := httptest.NewRequest(http.MethodPut, "/wallet/primary-currency", bytes.NewBufferString(`{"currency": "EUR"}`))
	rec := httptest.NewRecorder()
	h.SetPrimaryCurrency(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "currency must be BTC or USD", body.Error)
}
