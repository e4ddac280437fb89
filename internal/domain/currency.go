package domain

import "math"

type WalletCurrency string

const (
	CurrencyBTC WalletCurrency = "BTC"
	CurrencyUSD WalletCurrency = "USD"
)

func ParseWalletCurrency(s string) (WalletCurrency, bool) {
	switch WalletCurrency(s) {
	case CurrencyBTC:
		return CurrencyBTC, true
	case CurrencyUSD:
		return CurrencyUSD, true
	}
	return "", false
}

// PaymentAmount is an integer amount in the smallest unit of its currency.
// Amount is carried as float64 so the NaN "conversion unavailable" sentinel
// can propagate through the conversion engine without an error path.
type PaymentAmount struct {
	Amount   float64        `json:"amount"`
	Currency WalletCurrency `json:"currency"`
}

func (p PaymentAmount) Unavailable() bool {
	return math.IsNaN(p.Amount)
}

// PriceFromFixedPoint normalizes the backend's {base, offset} pair into
// USD per BTC-cent: base / 10^offset.
func PriceFromFixedPoint(base int64, offset int) float64 {
	return float64(base) / math.Pow(10, float64(offset))
}
