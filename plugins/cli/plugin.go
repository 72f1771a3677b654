package cli

import (
	"fmt"
	"os"

	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/plugins/banner"
)

// PluginName is the name of the CLI plugin.
const PluginName = "CLI"

var (
	// Plugin is the plugin instance of the CLI plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	version = flag.BoolP("version", "v", false, "prints the dripd version")
	help    = flag.BoolP("help", "h", false, "prints this usage text")
)

func init() {
	Plugin.Events.Init.Attach(events.NewClosure(onInit))
}

func onInit(_ *node.Plugin, _ *dig.Container) {
	if *version {
		fmt.Println(banner.AppName + " " + banner.AppVersion)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
}
