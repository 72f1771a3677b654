package faucet

import (
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/packages/chain"
	"github.com/dripnet/dripd/packages/faucet"
)

// PluginName is the name of the faucet plugin.
const PluginName = "Faucet"

type dependencies struct {
	dig.In

	Faucet *faucet.Faucet
}

var (
	// Plugin is the plugin instance of the faucet plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Provide(newFaucet); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// newFaucet builds the disbursement service from the configured operating limits.
func newFaucet(client *chain.Client) *faucet.Faucet {
	amount, err := chain.EtherToWei(Parameters.AmountPerRequest)
	if err != nil || amount.Sign() <= 0 {
		Plugin.LogFatalf("faucet.amountPerRequest must be a positive amount: %s", Parameters.AmountPerRequest)
	}

	minReserve, err := chain.EtherToWei(Parameters.MinReserve)
	if err != nil {
		Plugin.LogFatalf("malformed faucet.minReserve: %s", err)
	}

	ceiling, err := chain.EtherToWei(Parameters.RecipientCeiling)
	if err != nil {
		Plugin.LogFatalf("malformed faucet.recipientCeiling: %s", err)
	}

	return faucet.New(client, faucet.Options{
		AmountPerRequest:    amount,
		MinReserve:          minReserve,
		RecipientCeiling:    ceiling,
		CooldownWindow:      Parameters.CooldownWindow,
		MaxConfirmationWait: Parameters.MaxConfirmationWait,
	})
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
	log.Infof("dispensing %s per request, cooldown window %s", Parameters.AmountPerRequest, Parameters.CooldownWindow)
}
