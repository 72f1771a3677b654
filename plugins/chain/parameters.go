package chain

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the
// chain plugin.
type ParametersDefinition struct {
	// RPCEndpoint is the JSON-RPC endpoint of the node the faucet talks to.
	RPCEndpoint string `default:"http://127.0.0.1:8545" usage:"the JSON-RPC endpoint of the chain node"`
	// PrivateKey is the hex encoded private key of the faucet wallet, with or without a
	// 0x prefix. It must be defined for the daemon to start.
	PrivateKey string `default:"" usage:"the hex encoded private key of the faucet wallet"`
	// Network is the human readable name of the network reported by the health endpoint.
	Network string `default:"testnet" usage:"the display name of the network"`
	// RequestTimeout bounds every single RPC call towards the node.
	RequestTimeout time.Duration `default:"30s" usage:"the timeout of a single RPC call"`
}

// Parameters contains the configuration parameters of the chain plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "chain")
}
