package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry = prometheus.NewRegistry()

	// FaucetRequests counts funding requests by outcome.
	FaucetRequests *prometheus.CounterVec
	// DisbursedWei accumulates the total amount of wei sent out by the faucet.
	DisbursedWei prometheus.Counter

	reserveWei  prometheus.Gauge
	gasPriceWei prometheus.Gauge
)

func init() {
	FaucetRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "faucet_requests_total",
		Help: "Number of faucet funding requests by outcome.",
	}, []string{"result"})

	DisbursedWei = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "faucet_disbursed_wei_total",
		Help: "Total amount of wei disbursed by the faucet.",
	})

	reserveWei = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "faucet_reserve_wei",
		Help: "Current balance of the faucet account in wei.",
	})

	gasPriceWei = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "faucet_gas_price_wei",
		Help: "Gas price suggested by the connected node in wei.",
	})

	registry.MustRegister(FaucetRequests)
	registry.MustRegister(DisbursedWei)
	registry.MustRegister(reserveWei)
	registry.MustRegister(gasPriceWei)
}
