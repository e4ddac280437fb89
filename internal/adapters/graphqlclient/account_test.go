package graphqlclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"walletfeed/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAccountClient_Success(t *testing.T) {
	var gotAuth string
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req graphqlRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotQuery = req.Query

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "data": {
                "btcPrice": {"base": 64250000, "offset": 8, "currencyUnit": "USDCENT"},
                "me": {
                    "defaultAccount": {
                        "wallets": [
                            {"id": "w1", "walletCurrency": "BTC", "balance": 500},
                            {"id": "w2", "walletCurrency": "USD", "balance": 100}
                        ]
                    }
                }
            }
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewAccountClient(srv.Client(), srv.URL, "token-123")

	summary, err := c.GetAccountSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer token-123", gotAuth)
	require.Contains(t, gotQuery, "btcPrice")
	require.Contains(t, gotQuery, "defaultAccount")
	require.InDelta(t, 0.6425, summary.InitialPrice, 1e-9)
	require.Equal(t, int64(500), summary.Balances[domain.CurrencyBTC])
	require.Equal(t, int64(100), summary.Balances[domain.CurrencyUSD])
}

func TestAccountClient_NoAuthToken_OmitsHeader(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewAccountClient(srv.Client(), srv.URL, "")

	summary, err := c.GetAccountSummary(context.Background())
	require.NoError(t, err)
	require.False(t, sawAuthHeader)
	require.Equal(t, 0.0, summary.InitialPrice)
	require.Empty(t, summary.Balances)
}

func TestAccountClient_SkipsUnknownWalletCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "data": {
                "me": {
                    "defaultAccount": {
                        "wallets": [
                            {"id": "w1", "walletCurrency": "EUR", "balance": 7},
                            {"id": "w2", "walletCurrency": "BTC", "balance": 42}
                        ]
                    }
                }
            }
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewAccountClient(srv.Client(), srv.URL, "")

	summary, err := c.GetAccountSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Balances, 1)
	require.Equal(t, int64(42), summary.Balances[domain.CurrencyBTC])
}

func TestAccountClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewAccountClient(srv.Client(), srv.URL, "")

	_, err := c.GetAccountSummary(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 502")
}

func TestAccountClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewAccountClient(srv.Client(), srv.URL, "")

	_, err := c.GetAccountSummary(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode account query response")
}

func TestAccountClient_GraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": {}, "errors": [{"message": "not authorized"}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewAccountClient(srv.Client(), srv.URL, "bad-token")

	_, err := c.GetAccountSummary(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "account query returned error: not authorized")
}
