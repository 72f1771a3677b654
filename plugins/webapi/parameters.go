package webapi

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the
// web API plugin.
type ParametersDefinition struct {
	// BindAddress defines the bind address of the web API server.
	BindAddress string `default:"0.0.0.0:8080" usage:"the bind address of the web API server"`

	// Dev switches from the embedded frontend assets to serving StaticDir from disk.
	Dev bool `default:"false" usage:"serve the frontend from disk instead of the embedded assets"`

	// StaticDir is the directory the single page application is served from in dev mode.
	StaticDir string `default:"frontend" usage:"the directory containing the web frontend (dev mode)"`

	RateLimit struct {
		// Interval at which one request per origin is admitted to the faucet endpoint.
		Interval time.Duration `default:"1h" usage:"the refill interval of the per-IP rate limit"`

		// Burst is the number of requests an origin may spend at once.
		Burst int `default:"1" usage:"the burst size of the per-IP rate limit"`
	}
}

// Parameters contains the configuration parameters of the web API plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "webapi")
}
