package webapi

import (
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/markbates/pkger"
)

// frontendDir is the pkger path of the single page application.
const frontendDir = "/frontend"

// setupFrontend registers the routes serving the single page application. By default
// the assets come from pkger, so the daemon ships as one binary once the pkger tool
// has embedded them. In dev mode they are read from webapi.staticDir on every request,
// so a frontend change does not need a daemon rebuild.
func setupFrontend() {
	if Parameters.Dev {
		deps.Server.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api")
			},
			Root:  Parameters.StaticDir,
			Index: "index.html",
			HTML5: true,
		}))
		return
	}

	// load assets from pkger: either from within the binary or actual disk
	if err := pkger.Walk(frontendDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || info.Name() == "index.html" {
			return nil
		}
		deps.Server.GET("/"+info.Name(), echo.WrapHandler(http.FileServer(pkger.Dir(frontendDir))))
		return nil
	}); err != nil {
		log.Warnf("failed to load frontend assets: %s", err)
	}

	deps.Server.GET("/", indexRoute)
	deps.Server.GET("*", indexRoute)
}

// indexRoute serves the application shell for every path the router did not match, so
// the frontend can handle its own routing.
func indexRoute(c echo.Context) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api") {
		return echo.ErrNotFound
	}

	index, err := pkger.Open(frontendDir + "/index.html")
	if err != nil {
		return err
	}
	defer index.Close()

	indexHTML, err := ioutil.ReadAll(index)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, indexHTML)
}
