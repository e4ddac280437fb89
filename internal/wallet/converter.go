package wallet

import (
	"fmt"
	"math"

	"walletfeed/internal/domain"
)

// Conversion engine. Stateless: every function takes the current price and
// derives its result from scratch. An unknown price (0) yields NaN (numeric
// paths) or nil (formatted readout), never an error — a live balance display
// degrades to "loading", it doesn't crash.
//
// The two conversion entry points use different unit conventions on purpose:
// ConvertCurrencyAmount treats price as USD-cents per 100 sats, while
// ConvertPaymentAmount treats it as USD-cents per sat. Call sites depend on
// the distinction; do not unify them.

const satsPerBtc = 100_000_000

// ConvertCurrencyAmount converts a raw amount between currencies.
// Unknown pairings (including same-currency) pass the amount through.
func ConvertCurrencyAmount(price, amount float64, from, to domain.WalletCurrency) float64 {
	if price == 0 {
		return math.NaN()
	}
	if from == domain.CurrencyBTC && to == domain.CurrencyUSD {
		return amount * price / 100
	}
	if from == domain.CurrencyUSD && to == domain.CurrencyBTC {
		return 100 * amount / price
	}
	return amount
}

// ConvertPaymentAmount converts a tagged amount, rounding to the nearest
// integer subunit. Same-currency conversion is how non-integer inputs get
// normalized back to the integer invariant.
func ConvertPaymentAmount(price float64, pa domain.PaymentAmount, to domain.WalletCurrency) domain.PaymentAmount {
	if price == 0 {
		return domain.PaymentAmount{Amount: math.NaN(), Currency: to}
	}

	if pa.Currency == domain.CurrencyBTC && to == domain.CurrencyUSD {
		return domain.PaymentAmount{Amount: math.Round(pa.Amount * price), Currency: domain.CurrencyUSD}
	}

	if pa.Currency == domain.CurrencyUSD && to == domain.CurrencyBTC {
		return domain.PaymentAmount{Amount: math.Round(pa.Amount / price), Currency: domain.CurrencyBTC}
	}

	return domain.PaymentAmount{Amount: math.Round(pa.Amount), Currency: pa.Currency}
}

// UsdPerBtc reports the fiat value of one whole BTC, NaN while unknown.
func UsdPerBtc(price float64) domain.PaymentAmount {
	amount := math.NaN()
	if price != 0 {
		amount = price * satsPerBtc
	}
	return domain.PaymentAmount{Amount: amount, Currency: domain.CurrencyUSD}
}

// UsdPerSat is a display readout fixed at 8 decimal places; nil while the
// price is unknown. nil and NaN are distinct sentinels: nil belongs to the
// formatted-string readout, NaN to the numeric ones.
func UsdPerSat(price float64) *string {
	if price == 0 {
		return nil
	}
	s := fmt.Sprintf("%.8f", price/100)
	return &s
}

// FormatUsdAmount renders with 2 decimals, widening to 4 for sub-cent amounts
// that would otherwise show as "0.00".
func FormatUsdAmount(usd float64) string {
	if usd == 0 || usd >= 0.01 {
		return fmt.Sprintf("%.2f", usd)
	}
	return fmt.Sprintf("%.4f", usd)
}
