package faucet

import (
	"math/big"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/packages/chain"
	"github.com/dripnet/dripd/packages/faucet"
	"github.com/dripnet/dripd/plugins/metrics"
	"github.com/dripnet/dripd/plugins/webapi"
	"github.com/dripnet/dripd/plugins/webapi/jsonmodels"
)

// PluginName is the name of the web API faucet endpoint plugin.
const PluginName = "WebAPIFaucetEndpoint"

type dependencies struct {
	dig.In

	Server *echo.Echo
	Faucet *faucet.Faucet
}

var (
	// Plugin is the plugin instance of the web API faucet endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger("API-faucet")
	deps.Server.POST("/api/faucet", requestFunds, webapi.RateLimit())
}

// requestFunds runs one disbursement for the address in the request body and reports
// the transaction hash. All admission failures map to their HTTP status here.
func requestFunds(c echo.Context) error {
	var request jsonmodels.FaucetRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.ErrorResponse{Error: "Address is required"})
	}

	address := strings.TrimSpace(request.Address)
	if address == "" {
		return c.JSON(http.StatusBadRequest, jsonmodels.ErrorResponse{Error: "Address is required"})
	}

	log.Debugf("received funding request for address %s", address)

	result, err := deps.Faucet.Disburse(c.Request().Context(), address)
	if err != nil {
		status, message, label := mapError(err)
		if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
			log.Warnf("funding request for address %s failed: %s", address, err)
		}
		metrics.FaucetRequests.WithLabelValues(label).Inc()
		return c.JSON(status, jsonmodels.ErrorResponse{Error: message})
	}

	metrics.FaucetRequests.WithLabelValues("ok").Inc()
	metrics.DisbursedWei.Add(weiAsFloat(result))

	response := jsonmodels.FaucetResponse{
		Success: true,
		TxHash:  result.TxHash,
		Amount:  chain.WeiToEther(result.Amount),
	}
	if result.Confirmed {
		response.BlockNumber = result.BlockNumber
	}

	log.Infof("sent %s to address %s via tx %s", response.Amount, address, result.TxHash)
	return c.JSON(http.StatusOK, response)
}

// mapError translates the faucet failure taxonomy into HTTP status, response message
// and metrics label.
func mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, faucet.ErrInvalidAddress):
		return http.StatusBadRequest, "Invalid Ethereum address", "invalid_address"
	case errors.Is(err, faucet.ErrCooldownActive):
		return http.StatusTooManyRequests, "This address has already requested funds recently. Please wait 1 hour.", "cooldown"
	case errors.Is(err, faucet.ErrReserveLow):
		return http.StatusServiceUnavailable, "Faucet is running low on funds. Please contact the administrator.", "reserve_low"
	case errors.Is(err, faucet.ErrRecipientFunded):
		return http.StatusBadRequest, "Recipient address already has sufficient funds", "recipient_funded"
	case errors.Is(err, chain.ErrInsufficientFunds):
		return http.StatusServiceUnavailable, "Faucet has insufficient funds", "insufficient_funds"
	case errors.Is(err, faucet.ErrChainClient):
		return http.StatusBadGateway, "Network error. Please try again later.", "chain_error"
	default:
		return http.StatusInternalServerError, "Internal server error", "internal_error"
	}
}

func weiAsFloat(result *faucet.Disbursement) float64 {
	value, _ := new(big.Float).SetInt(result.Amount).Float64()
	return value
}
