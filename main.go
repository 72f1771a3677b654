package main

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/dripnet/dripd/plugins/banner"
	"github.com/dripnet/dripd/plugins/chain"
	"github.com/dripnet/dripd/plugins/cli"
	"github.com/dripnet/dripd/plugins/config"
	"github.com/dripnet/dripd/plugins/faucet"
	"github.com/dripnet/dripd/plugins/gracefulshutdown"
	"github.com/dripnet/dripd/plugins/logger"
	"github.com/dripnet/dripd/plugins/metrics"
	"github.com/dripnet/dripd/plugins/webapi"
	webapifaucet "github.com/dripnet/dripd/plugins/webapi/faucet"
	webapiinfo "github.com/dripnet/dripd/plugins/webapi/info"
)

func main() {
	node.Run(
		node.Plugins(
			banner.Plugin,
			config.Plugin,
			logger.Plugin,
			cli.Plugin,

			chain.Plugin,
			faucet.Plugin,

			webapi.Plugin,
			webapifaucet.Plugin,
			webapiinfo.Plugin,

			metrics.Plugin,
			gracefulshutdown.Plugin,
		),
	)
}
