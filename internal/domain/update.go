package domain

import "time"

type UpdateKind string

const (
	KindPrice       UpdateKind = "Price"
	KindLn          UpdateKind = "LnUpdate"
	KindOnChain     UpdateKind = "OnChainUpdate"
	KindIntraLedger UpdateKind = "IntraLedgerUpdate"
)

// PriceUpdate carries the backend's fixed-point price: value = Base / 10^Offset.
type PriceUpdate struct {
	Base         int64  `json:"base"`
	Offset       int    `json:"offset"`
	CurrencyUnit string `json:"currency_unit"`
}

func (p PriceUpdate) Value() float64 {
	return PriceFromFixedPoint(p.Base, p.Offset)
}

type LnUpdate struct {
	PaymentHash string `json:"payment_hash"`
	Status      string `json:"status"`
}

type OnChainUpdate struct {
	TxNotificationType string  `json:"tx_notification_type"`
	TxHash             string  `json:"tx_hash"`
	Amount             int64   `json:"amount"`
	UsdPerSat          float64 `json:"usd_per_sat"`
}

type IntraLedgerUpdate struct {
	TxNotificationType string  `json:"tx_notification_type"`
	Amount             int64   `json:"amount"`
	UsdPerSat          float64 `json:"usd_per_sat"`
}

type WalletSnapshot struct {
	ID       string         `json:"id"`
	Currency WalletCurrency `json:"currency"`
	Balance  int64          `json:"balance"`
}

// SubscriptionUpdate is one decoded myUpdates event. Exactly one of the
// kind-specific fields matching Kind is set; Wallets may accompany any kind.
type SubscriptionUpdate struct {
	Kind        UpdateKind         `json:"kind"`
	Price       *PriceUpdate       `json:"price,omitempty"`
	Ln          *LnUpdate          `json:"ln,omitempty"`
	OnChain     *OnChainUpdate     `json:"on_chain,omitempty"`
	IntraLedger *IntraLedgerUpdate `json:"intra_ledger,omitempty"`
	Wallets     []WalletSnapshot   `json:"wallets,omitempty"`
	ReceivedAt  time.Time          `json:"received_at"`
}
