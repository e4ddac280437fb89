package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"walletfeed/internal/adapters/cache"
	"walletfeed/internal/adapters/graphqlclient"
	"walletfeed/internal/adapters/postgres"
	"walletfeed/internal/adapters/stream"
	"walletfeed/internal/api"
	"walletfeed/internal/config"
	"walletfeed/internal/domain"
	"walletfeed/internal/platform/db"
	httpserver "walletfeed/internal/platform/http"
	"walletfeed/internal/wallet"
	"walletfeed/internal/wallet/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts the subscription stream,
// the refresh scheduler and the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	if appCfg.Backend.GraphQLURL == "" || appCfg.Backend.WsURL == "" {
		return fmt.Errorf("backend graphql_url and ws_url are required")
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, journal restore)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Price slot: in-memory ristretto in front of the persisted postgres row
	memCache, err := cache.NewPriceCache()
	if err != nil {
		logrus.WithError(err).Error("Failed to create price cache")
		return err
	}
	defer memCache.Close()
	priceCache := cache.NewLayeredPriceCache(memCache, postgres.NewPriceRepository(pool))

	// Core: reconciler, feed, service
	reconciler := wallet.NewReconciler(priceCache)
	feed := wallet.NewFeed(reconciler, postgres.NewEventRepository(pool))
	if restoreErr := feed.Restore(startupCtx); restoreErr != nil {
		logrus.WithError(restoreErr).Warn("Failed to restore journaled events")
	}
	primary, ok := domain.ParseWalletCurrency(strings.ToUpper(appCfg.Wallet.PrimaryCurrency))
	if !ok {
		primary = domain.CurrencyUSD
	}
	walletService := wallet.NewService(reconciler, feed, primary)

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.Backend.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Account query client
	accountClient := graphqlclient.NewAccountClient(baseHTTPClient, appCfg.Backend.GraphQLURL, appCfg.Backend.AuthToken)

	// Periodic account refresh
	scheduler := wallet.NewScheduler(accountClient, walletService, time.Duration(appCfg.Scheduler.RefreshSec)*time.Second)
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Live subscription stream
	streamClient := stream.NewClient(appCfg.Backend.WsURL, appCfg.Backend.AuthToken, feed.Apply)
	streamClient.Start(ctx)
	defer streamClient.Stop()
	logrus.Info("✅ Subscription stream started")

	// Handlers and router
	walletHandler := handler.NewWalletHandler(walletService)
	router := api.NewRouter(walletHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop the stream and scheduler
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
