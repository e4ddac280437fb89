package handler

import (
	"net/http"

	"walletfeed/internal/wallet"
)

type GetPriceResponse struct {
	// Price is USD-cents per sat as delivered by the feed; 0 while unknown.
	Price     float64  `json:"price" example:"0.00064"`
	UsdPerBtc *float64 `json:"usd_per_btc" example:"64000.12"`
	UsdPerSat *string  `json:"usd_per_sat" example:"0.00064000"`
	Formatted *string  `json:"formatted,omitempty" example:"64000.12"`
}

// GetPrice godoc
// @Summary Current BTC price
// @Description Reconciled price readouts; fields are null while the price is unknown
// @Tags Wallet
// @Produce json
// @Success 200 {object} GetPriceResponse
// @Router /wallet/price [get]
func (h *Handler) GetPrice(w http.ResponseWriter, _ *http.Request) {
	price := h.service.CurrentPrice()

	res := GetPriceResponse{Price: price, UsdPerSat: wallet.UsdPerSat(price)}
	if usdPerBtc := wallet.UsdPerBtc(price); !usdPerBtc.Unavailable() {
		amount := usdPerBtc.Amount
		res.UsdPerBtc = &amount
		formatted := wallet.FormatUsdAmount(amount)
		res.Formatted = &formatted
	}

	writeJSON(w, http.StatusOK, res)
}
