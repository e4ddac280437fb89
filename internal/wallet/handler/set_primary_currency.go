package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"walletfeed/internal/domain"
)

type SetPrimaryCurrencyRequest struct {
	Currency string `json:"currency" example:"USD"`
}

type SetPrimaryCurrencyResponse struct {
	Currency string `json:"currency" example:"USD"`
}

// SetPrimaryCurrency godoc
// @Summary Set the primary display currency
// @Description Selects which currency generic amounts are converted into
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body SetPrimaryCurrencyRequest true "Primary currency"
// @Success 200 {object} SetPrimaryCurrencyResponse
// @Failure 400 {object} errorResponse
// @Router /wallet/primary-currency [put]
func (h *Handler) SetPrimaryCurrency(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SetPrimaryCurrencyRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	currency, ok := domain.ParseWalletCurrency(strings.ToUpper(strings.TrimSpace(req.Currency)))
	if !ok {
		writeError(w, http.StatusBadRequest, "currency must be BTC or USD")
		return
	}

	h.service.SetPrimaryCurrency(currency)

	writeJSON(w, http.StatusOK, SetPrimaryCurrencyResponse{
		Currency: string(h.service.PrimaryCurrency()),
	})
}
