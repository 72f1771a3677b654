package banner

import (
	"fmt"

	"github.com/iotaledger/hive.go/node"
)

const (
	// PluginName is the name of the banner plugin.
	PluginName = "Banner"

	// AppName is the name of the app.
	AppName = "dripd"

	// AppVersion is the version of the app.
	AppVersion = "v0.3.1"
)

// Plugin is the plugin instance of the banner plugin.
var Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)

func configure(_ *node.Plugin) {
	fmt.Printf(`
     _      _           _
  __| |_ __(_)_ __   __| |
 / _' | '__| | '_ \ / _' |
| (_| | |  | | |_) | (_| |
 \__,_|_|  |_| .__/ \__,_|
             |_|   %s

`, AppVersion)
	fmt.Println("testnet faucet daemon")
}
