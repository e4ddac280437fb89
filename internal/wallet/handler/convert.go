package handler

import (
	"net/http"
	"strconv"
	"strings"

	"walletfeed/internal/domain"
)

type ConvertResponse struct {
	Amount   int64  `json:"amount" example:"640"`
	Currency string `json:"currency" example:"USD"`
}

// Convert godoc
// @Summary Convert a payment amount
// @Description Convert an integer amount between BTC sats and USD cents at the current price
// @Tags Wallet
// @Produce json
// @Param amount query int true "Amount in smallest units of 'from'"
// @Param from query string true "Source currency (BTC or USD)"
// @Param to query string false "Target currency; defaults to the primary currency"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse "price not yet available"
// @Router /wallet/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseInt(strings.TrimSpace(q.Get("amount")), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be an integer")
		return
	}

	from, ok := domain.ParseWalletCurrency(strings.ToUpper(strings.TrimSpace(q.Get("from"))))
	if !ok {
		writeError(w, http.StatusBadRequest, "from must be BTC or USD")
		return
	}

	pa := domain.PaymentAmount{Amount: float64(amount), Currency: from}

	var converted domain.PaymentAmount
	if rawTo := strings.ToUpper(strings.TrimSpace(q.Get("to"))); rawTo == "" {
		converted = h.service.ConvertToPrimary(pa)
	} else {
		to, ok := domain.ParseWalletCurrency(rawTo)
		if !ok {
			writeError(w, http.StatusBadRequest, "to must be BTC or USD")
			return
		}
		converted = h.service.Convert(pa, to)
	}

	if converted.Unavailable() {
		writeError(w, http.StatusServiceUnavailable, "price not yet available")
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		Amount:   int64(converted.Amount),
		Currency: string(converted.Currency),
	})
}
