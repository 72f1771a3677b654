package metrics

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/packages/chain"
	"github.com/dripnet/dripd/packages/shutdown"
)

// PluginName is the name of the metrics plugin.
const PluginName = "Metrics"

type dependencies struct {
	dig.In

	Client *chain.Client
}

var (
	// Plugin is the plugin instance of the metrics plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log    *logger.Logger
	server *http.Server
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)
}

func run(plugin *node.Plugin) {
	log.Info("Starting Prometheus exporter ...")

	if err := daemon.BackgroundWorker("Prometheus exporter", func(ctx context.Context) {
		engine := gin.New()
		engine.Use(gin.Recovery())

		engine.GET("/metrics", func(c *gin.Context) {
			handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
				EnableOpenMetrics: true,
			})
			handler.ServeHTTP(c.Writer, c.Request)
		})

		bindAddr := Parameters.BindAddress
		server = &http.Server{Addr: bindAddr, Handler: engine}

		go func() {
			log.Infof("You can now access the Prometheus exporter using: http://%s/metrics", bindAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Stopping Prometheus exporter due to an error: %s", err)
			}
		}()

		go pollChainMetrics(ctx)

		<-ctx.Done()
		log.Info("Stopping Prometheus exporter ...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err.Error())
		}
		log.Info("Stopping Prometheus exporter ... done")
	}, shutdown.PriorityPrometheus); err != nil {
		log.Panicf("Failed to start as daemon: %s", err)
	}
}

// pollChainMetrics refreshes the reserve and gas price gauges until the context closes.
func pollChainMetrics(ctx context.Context) {
	collect := func() {
		reserve, err := deps.Client.ReserveBalance(ctx)
		if err != nil {
			log.Debugf("failed to collect reserve balance: %s", err)
		} else {
			reserveWei.Set(weiToFloat(reserve))
		}

		gasPrice, err := deps.Client.GasPrice(ctx)
		if err != nil {
			log.Debugf("failed to collect gas price: %s", err)
		} else {
			gasPriceWei.Set(weiToFloat(gasPrice))
		}
	}

	collect()

	ticker := time.NewTicker(Parameters.CollectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			collect()
		}
	}
}

func weiToFloat(value *big.Int) float64 {
	result, _ := new(big.Float).SetInt(value).Float64()
	return result
}
