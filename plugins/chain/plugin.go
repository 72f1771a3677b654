package chain

import (
	"context"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/packages/chain"
	"github.com/dripnet/dripd/packages/shutdown"
)

// PluginName is the name of the chain plugin.
const PluginName = "Chain"

type dependencies struct {
	dig.In

	Client *chain.Client
}

var (
	// Plugin is the plugin instance of the chain plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Provide(newClient); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// newClient validates the signing key and dials the configured RPC endpoint. Both are
// hard startup requirements: the daemon must not serve traffic without them.
func newClient() *chain.Client {
	if Parameters.PrivateKey == "" {
		Plugin.LogFatalf("a private key must be configured for the faucet to sign transfers (chain.privateKey)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), Parameters.RequestTimeout)
	defer cancel()

	client, err := chain.Dial(ctx, Parameters.RPCEndpoint, Parameters.PrivateKey, Parameters.RequestTimeout)
	if err != nil {
		Plugin.LogFatalf("failed to initialize the chain client: %s", err)
	}

	return client
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
	log.Infof("connected to %s, chain ID %s, faucet address %s", Parameters.RPCEndpoint, deps.Client.ChainID(), deps.Client.FaucetAddress())
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, func(ctx context.Context) {
		<-ctx.Done()
		deps.Client.Close()
	}, shutdown.PriorityChain); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}
