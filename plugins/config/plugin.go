package config

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"
	"go.uber.org/dig"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

var (
	// Plugin is the plugin instance of the config plugin.
	Plugin *node.Plugin

	// flags
	configFilePath      = flag.StringP("config", "c", "config.json", "file path of the config file")
	skipConfigAvailable = flag.Bool("skip-config", false, "skip the config file availability check")

	_node *configuration.Configuration
)

// Node returns the configuration instance the daemon runs with.
func Node() *configuration.Configuration {
	return _node
}

func init() {
	_node = configuration.New()

	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)
	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := fetch(); err != nil {
			if !*skipConfigAvailable {
				// the global logger is not initialized at this stage, so write to stdout
				fmt.Println(err.Error())
				fmt.Println("no config file present, terminating dripd. please use the provided config.default.json to create a config.json.")
				os.Exit(1)
			}
		}

		if err := container.Provide(func() *configuration.Configuration {
			return _node
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// fetch loads the config file, then applies command line flags and environment
// variables on top of it.
func fetch() error {
	flag.Parse()

	if err := _node.LoadFile(*configFilePath); err != nil {
		return errors.Wrapf(err, "error loading config file %s", *configFilePath)
	}

	if err := _node.LoadFlagSet(flag.CommandLine); err != nil {
		return err
	}

	// read in ENV variables, then load the flags again to overwrite env vars that were
	// also set via the command line
	if err := _node.LoadEnvironmentVars(""); err != nil {
		return err
	}
	if err := _node.LoadFlagSet(flag.CommandLine); err != nil {
		return err
	}

	// propagate the final values back into the bound parameter structs
	configuration.UpdateBoundParameters(_node)

	return nil
}
