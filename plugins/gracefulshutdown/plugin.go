package gracefulshutdown

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the graceful shutdown plugin.
const PluginName = "GracefulShutdown"

var (
	// Plugin is the plugin instance of the graceful shutdown plugin.
	Plugin *node.Plugin

	log          *logger.Logger
	gracefulStop chan os.Signal
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
	gracefulStop = make(chan os.Signal, 1)

	signal.Notify(gracefulStop, syscall.SIGTERM)
	signal.Notify(gracefulStop, syscall.SIGINT)

	go func() {
		<-gracefulStop

		waitToKill := Parameters.WaitToKillTime
		log.Warnf("Received shutdown request - waiting (max %s) to finish processing ...", waitToKill)

		go func() {
			start := time.Now()
			for range time.Tick(time.Second) {
				sinceStart := time.Since(start)

				if sinceStart <= waitToKill {
					processList := ""
					runningBackgroundWorkers := daemon.GetRunningBackgroundWorkers()
					if len(runningBackgroundWorkers) >= 1 {
						processList = "(" + strings.Join(runningBackgroundWorkers, ", ") + ") "
					}
					log.Warnf("Received shutdown request - waiting (max %s) to finish processing %s...", waitToKill-sinceStart.Round(time.Second), processList)
				} else {
					log.Error("Background processes did not terminate in time! Forcing shutdown ...")
					os.Exit(1)
				}
			}
		}()

		daemon.Shutdown()
	}()
}
