package domain

// AccountSummary is the result of the non-live account query: the staler
// fallback the live subscription shadows.
type AccountSummary struct {
	// InitialPrice is 0 when the backend returned no price.
	InitialPrice float64
	Balances     map[WalletCurrency]int64
}
