package metrics

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the metrics plugin.
type ParametersDefinition struct {
	// BindAddress defines the bind address for the Prometheus exporter server.
	BindAddress string `default:"0.0.0.0:9311" usage:"bind address for the Prometheus exporter server"`

	// CollectInterval defines how often the chain gauges are refreshed.
	CollectInterval time.Duration `default:"30s" usage:"interval between refreshes of the chain gauges"`
}

// Parameters contains the configuration parameters of the metrics plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "metrics")
}
