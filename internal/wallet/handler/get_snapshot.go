package handler

import (
	"math"
	"net/http"

	"walletfeed/internal/domain"
	"walletfeed/internal/wallet"
)

type BalanceResponse struct {
	Currency string `json:"currency" example:"BTC"`
	Balance  int64  `json:"balance" example:"12345"`
}

type LnUpdateResponse struct {
	PaymentHash string `json:"payment_hash"`
	Status      string `json:"status"`
}

type OnChainUpdateResponse struct {
	TxNotificationType string  `json:"tx_notification_type"`
	TxHash             string  `json:"tx_hash"`
	Amount             int64   `json:"amount"`
	UsdPerSat          float64 `json:"usd_per_sat"`
}

type IntraLedgerUpdateResponse struct {
	TxNotificationType string  `json:"tx_notification_type"`
	Amount             int64   `json:"amount"`
	UsdPerSat          float64 `json:"usd_per_sat"`
}

type GetSnapshotResponse struct {
	// UsdPerBtc and UsdPerSat are null while the price is still unknown.
	UsdPerBtc         *float64                   `json:"usd_per_btc" example:"64000.12"`
	UsdPerSat         *string                    `json:"usd_per_sat" example:"0.00064000"`
	PrimaryCurrency   string                     `json:"primary_currency" example:"USD"`
	Balances          []BalanceResponse          `json:"balances"`
	LnUpdate          *LnUpdateResponse          `json:"ln_update,omitempty"`
	OnChainUpdate     *OnChainUpdateResponse     `json:"on_chain_update,omitempty"`
	IntraLedgerUpdate *IntraLedgerUpdateResponse `json:"intra_ledger_update,omitempty"`
}

// GetSnapshot godoc
// @Summary Wallet snapshot
// @Description Reconciled balances, price readouts and last-seen updates
// @Tags Wallet
// @Produce json
// @Success 200 {object} GetSnapshotResponse
// @Router /wallet/snapshot [get]
func (h *Handler) GetSnapshot(w http.ResponseWriter, _ *http.Request) {
	view := h.service.Snapshot()
	writeJSON(w, http.StatusOK, snapshotToResponse(view))
}

func snapshotToResponse(view wallet.View) GetSnapshotResponse {
	res := GetSnapshotResponse{
		UsdPerSat:       view.UsdPerSat,
		PrimaryCurrency: string(view.PrimaryCurrency),
		Balances:        make([]BalanceResponse, 0, len(view.Balances)),
	}

	// JSON has no NaN; the "unavailable" sentinel becomes null on the wire.
	if !math.IsNaN(view.UsdPerBtc.Amount) {
		usdPerBtc := view.UsdPerBtc.Amount
		res.UsdPerBtc = &usdPerBtc
	}

	for _, currency := range []domain.WalletCurrency{domain.CurrencyBTC, domain.CurrencyUSD} {
		if balance, ok := view.Balances[currency]; ok {
			res.Balances = append(res.Balances, BalanceResponse{Currency: string(currency), Balance: balance})
		}
	}

	if view.LnUpdate != nil {
		res.LnUpdate = &LnUpdateResponse{PaymentHash: view.LnUpdate.PaymentHash, Status: view.LnUpdate.Status}
	}
	if view.OnChainUpdate != nil {
		res.OnChainUpdate = &OnChainUpdateResponse{
			TxNotificationType: view.OnChainUpdate.TxNotificationType,
			TxHash:             view.OnChainUpdate.TxHash,
			Amount:             view.OnChainUpdate.Amount,
			UsdPerSat:          view.OnChainUpdate.UsdPerSat,
		}
	}
	if view.IntraLedgerUpdate != nil {
		res.IntraLedgerUpdate = &IntraLedgerUpdateResponse{
			TxNotificationType: view.IntraLedgerUpdate.TxNotificationType,
			Amount:             view.IntraLedgerUpdate.Amount,
			UsdPerSat:          view.IntraLedgerUpdate.UsdPerSat,
		}
	}
	return res
}
