package wallet

import "walletfeed/internal/domain"

// View is a point-in-time snapshot of the reconciled wallet state.
type View struct {
	Price             float64
	UsdPerBtc         domain.PaymentAmount
	UsdPerSat         *string
	Balances          map[domain.WalletCurrency]int64
	PrimaryCurrency   domain.WalletCurrency
	LnUpdate          *domain.LnUpdate
	OnChainUpdate     *domain.OnChainUpdate
	IntraLedgerUpdate *domain.IntraLedgerUpdate
}
