package api

import (
	_ "walletfeed/docs"
	"walletfeed/internal/wallet/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(walletHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	// Prometheus
	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/wallet/snapshot", walletHandler.GetSnapshot)
	router.Get("/api/v1/wallet/price", walletHandler.GetPrice)
	router.Get("/api/v1/wallet/convert", walletHandler.Convert)
	router.Put("/api/v1/wallet/primary-currency", walletHandler.SetPrimaryCurrency)
	return router
}
