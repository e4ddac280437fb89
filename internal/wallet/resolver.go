package wallet

import "walletfeed/internal/domain"

// ResolveBalances picks the freshest balance per wallet currency: the live
// subscription snapshot wins where it has an entry, the account query result
// is the fallback. The override is per currency, not whole-object — BTC and
// USD resolve independently.
func ResolveBalances(sub, query map[domain.WalletCurrency]int64) map[domain.WalletCurrency]int64 {
	resolved := make(map[domain.WalletCurrency]int64, len(query)+len(sub))
	for currency, balance := range query {
		resolved[currency] = balance
	}
	for currency, balance := range sub {
		resolved[currency] = balance
	}
	return resolved
}
