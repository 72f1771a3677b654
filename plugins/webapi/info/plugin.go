package info

import (
	"net/http"

	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/packages/chain"
	"github.com/dripnet/dripd/packages/faucet"
	chainplugin "github.com/dripnet/dripd/plugins/chain"
	"github.com/dripnet/dripd/plugins/webapi/jsonmodels"
)

// PluginName is the name of the web API info endpoint plugin.
const PluginName = "WebAPIInfoEndpoint"

type dependencies struct {
	dig.In

	Server *echo.Echo
	Client *chain.Client
	Faucet *faucet.Faucet
}

var (
	// Plugin is the plugin instance of the web API info endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger("API-info")
	deps.Server.GET("/api/health", getHealth)
	deps.Server.GET("/api/stats", getStats)
}

// getHealth reports whether the chain node is reachable and includes the current
// wallet state when it is.
func getHealth(c echo.Context) error {
	balance, err := deps.Client.ReserveBalance(c.Request().Context())
	if err != nil {
		log.Warnf("health check failed to reach chain node: %s", err)
		return c.JSON(http.StatusInternalServerError, jsonmodels.HealthResponse{
			Status: "unhealthy",
			Error:  "failed to reach chain node",
		})
	}

	return c.JSON(http.StatusOK, jsonmodels.HealthResponse{
		Status:        "healthy",
		FaucetAddress: deps.Client.FaucetAddress(),
		Balance:       chain.WeiToEther(balance),
		Network:       chainplugin.Parameters.Network,
		ChainID:       deps.Client.ChainID().Uint64(),
	})
}

// getStats reports the operating numbers the frontend renders.
func getStats(c echo.Context) error {
	ctx := c.Request().Context()

	balance, err := deps.Client.ReserveBalance(ctx)
	if err != nil {
		log.Warnf("stats failed to fetch faucet balance: %s", err)
		return c.JSON(http.StatusBadGateway, jsonmodels.ErrorResponse{Error: "Network error. Please try again later."})
	}

	gasPrice, err := deps.Client.GasPrice(ctx)
	if err != nil {
		log.Warnf("stats failed to fetch gas price: %s", err)
		return c.JSON(http.StatusBadGateway, jsonmodels.ErrorResponse{Error: "Network error. Please try again later."})
	}

	return c.JSON(http.StatusOK, jsonmodels.StatsResponse{
		FaucetBalance:    chain.WeiToEther(balance),
		FaucetAddress:    deps.Client.FaucetAddress(),
		AmountPerRequest: chain.WeiToEther(deps.Faucet.AmountPerRequest()),
		GasPrice:         chain.WeiToEther(gasPrice),
		CooldownPeriod:   deps.Faucet.CooldownWindow().String(),
	})
}
