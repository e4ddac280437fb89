package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletfeed",
		Name:      "subscription_updates_total",
		Help:      "Subscription events received, by kind",
	}, []string{"kind"})

	reconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "walletfeed",
		Name:      "stream_reconnects_total",
		Help:      "Websocket stream reconnect attempts",
	})

	priceGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "walletfeed",
		Name:      "btc_price_usd_cents_per_sat",
		Help:      "Current reconciled price (0 while unknown)",
	})
)

func IncUpdate(kind string)  { updatesTotal.WithLabelValues(kind).Inc() }
func IncReconnect()          { reconnectsTotal.Inc() }
func SetPrice(price float64) { priceGauge.Set(price) }
