package handler

import (
	"encoding/json"
	"net/http"

	"walletfeed/internal/domain"
	"walletfeed/internal/wallet"
)

type WalletService interface {
	Snapshot() wallet.View
	CurrentPrice() float64
	Convert(pa domain.PaymentAmount, to domain.WalletCurrency) domain.PaymentAmount
	ConvertToPrimary(pa domain.PaymentAmount) domain.PaymentAmount
	PrimaryCurrency() domain.WalletCurrency
	SetPrimaryCurrency(c domain.WalletCurrency)
}

type Handler struct {
	service WalletService
}

func NewWalletHandler(service WalletService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
