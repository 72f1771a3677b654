package webapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/dig"

	"github.com/dripnet/dripd/packages/ratelimit"
	"github.com/dripnet/dripd/packages/shutdown"
	"github.com/dripnet/dripd/plugins/webapi/jsonmodels"
)

// PluginName is the name of the web API plugin.
const PluginName = "WebAPI"

type dependencies struct {
	dig.In

	Server  *echo.Echo
	Limiter *ratelimit.Limiter
}

var (
	// Plugin is the plugin instance of the web API plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Provide(newServer); err != nil {
			Plugin.Panic(err)
		}
		if err := container.Provide(newLimiter); err != nil {
			Plugin.Panic(err)
		}
	}))
}

func newServer() *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Use(middleware.Recover())
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	server.HTTPErrorHandler = errorHandler

	return server
}

func newLimiter() *ratelimit.Limiter {
	return ratelimit.New(Parameters.RateLimit.Interval, Parameters.RateLimit.Burst)
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
	setupFrontend()
}

// errorHandler renders every error the router or a handler surfaces as a JSON body
// without leaking internals. Handlers map domain failures themselves; everything that
// still reaches this point is either an unmatched route or an unhandled failure.
func errorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
	}

	if c.Response().Committed {
		return
	}

	if status == http.StatusNotFound {
		if strings.HasPrefix(c.Request().URL.Path, "/api") {
			_ = c.JSON(http.StatusNotFound, jsonmodels.ErrorResponse{Error: "API endpoint not found"})
			return
		}
		_ = c.NoContent(http.StatusNotFound)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("request to %s failed: %s", c.Request().URL.Path, err)
		_ = c.JSON(status, jsonmodels.ErrorResponse{Error: "Internal server error"})
		return
	}

	_ = c.JSON(status, jsonmodels.ErrorResponse{Error: http.StatusText(status)})
}

// RateLimit returns a middleware admitting one request per origin per configured
// interval. It is applied to the faucet route only, the read-only endpoints stay
// unlimited.
func RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deps.Limiter.Allow(c.RealIP()) {
				log.Debugf("rate limited origin %s", c.RealIP())
				return c.JSON(http.StatusTooManyRequests, jsonmodels.ErrorResponse{
					Error: "Too many requests from this IP. Please wait 1 hour.",
				})
			}
			return next(c)
		}
	}
}

func run(plugin *node.Plugin) {
	log.Infof("Starting %s ...", PluginName)
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityWebAPI); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer log.Infof("Stopping %s ... done", PluginName)

	stopped := make(chan struct{})
	go func() {
		log.Infof("%s started, bind-address=%s", PluginName, Parameters.BindAddress)
		if err := deps.Server.Start(Parameters.BindAddress); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Error serving: %s", err)
			}
			close(stopped)
		}
	}()

	// stop if we are shutting down or the server could not be started
	select {
	case <-ctx.Done():
	case <-stopped:
	}

	log.Infof("Stopping %s ...", PluginName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error stopping: %s", err)
	}

	deps.Limiter.Close()
}
