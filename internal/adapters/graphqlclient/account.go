package graphqlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"walletfeed/internal/domain"
)

// accountQuery is the non-live fallback for everything the subscription also
// carries: the bootstrap price and per-wallet balances.
const accountQuery = `query accountSummary {
  btcPrice {
    base
    offset
    currencyUnit
  }
  me {
    defaultAccount {
      wallets {
        id
        walletCurrency
        balance
      }
    }
  }
}`

type AccountClient struct {
	http      *http.Client
	url       string
	authToken string
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type accountResponse struct {
	Data struct {
		BtcPrice *struct {
			Base   int64 `json:"base"`
			Offset int   `json:"offset"`
		} `json:"btcPrice"`
		Me *struct {
			DefaultAccount struct {
				Wallets []struct {
					ID             string `json:"id"`
					WalletCurrency string `json:"walletCurrency"`
					Balance        int64  `json:"balance"`
				} `json:"wallets"`
			} `json:"defaultAccount"`
		} `json:"me"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

func (c *AccountClient) GetAccountSummary(ctx context.Context) (domain.AccountSummary, error) {
	payload, err := json.Marshal(graphqlRequest{Query: accountQuery})
	if err != nil {
		return domain.AccountSummary{}, fmt.Errorf("failed to marshal account query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return domain.AccountSummary{}, fmt.Errorf("failed to create account query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.AccountSummary{}, fmt.Errorf("failed to execute account query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.AccountSummary{}, fmt.Errorf("unexpected status code %d for account query: %s", resp.StatusCode, resp.Status)
	}

	var body accountResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.AccountSummary{}, fmt.Errorf("failed to decode account query response: %w", err)
	}

	if len(body.Errors) > 0 {
		return domain.AccountSummary{}, fmt.Errorf("account query returned error: %s", body.Errors[0].Message)
	}

	summary := domain.AccountSummary{Balances: make(map[domain.WalletCurrency]int64)}
	if body.Data.BtcPrice != nil {
		summary.InitialPrice = domain.PriceFromFixedPoint(body.Data.BtcPrice.Base, body.Data.BtcPrice.Offset)
	}
	if body.Data.Me != nil {
		for _, w := range body.Data.Me.DefaultAccount.Wallets {
			currency, ok := domain.ParseWalletCurrency(w.WalletCurrency)
			if !ok {
				continue
			}
			summary.Balances[currency] = w.Balance
		}
	}
	return summary, nil
}

func NewAccountClient(httpClient *http.Client, url string, authToken string) *AccountClient {
	return &AccountClient{http: httpClient, url: url, authToken: authToken}
}
