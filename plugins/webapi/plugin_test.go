package webapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dripnet/dripd/packages/ratelimit"
	"github.com/dripnet/dripd/plugins/webapi/jsonmodels"
)

func init() {
	log = logger.NewExampleLogger(PluginName)
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// newTestServer wires the real server and limiter the way the daemon does: the
// limiter guards the faucet route only.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	deps.Limiter = ratelimit.New(time.Hour, 1)
	t.Cleanup(deps.Limiter.Close)

	server := newServer()
	server.POST("/api/faucet", okHandler, RateLimit())
	server.GET("/api/health", okHandler)
	server.GET("/api/stats", okHandler)

	return server
}

func request(server *echo.Echo, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = origin + ":4000"
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitFaucetRoute(t *testing.T) {
	server := newTestServer(t)

	rec := request(server, http.MethodPost, "/api/faucet", "203.0.113.7")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(server, http.MethodPost, "/api/faucet", "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response jsonmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Too many requests from this IP. Please wait 1 hour.", response.Error)
}

func TestRateLimitPerOrigin(t *testing.T) {
	server := newTestServer(t)

	rec := request(server, http.MethodPost, "/api/faucet", "203.0.113.7")
	require.Equal(t, http.StatusOK, rec.Code)

	// a different origin still has its own budget
	rec = request(server, http.MethodPost, "/api/faucet", "203.0.113.8")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadOnlyRoutesUnlimited(t *testing.T) {
	server := newTestServer(t)

	rec := request(server, http.MethodPost, "/api/faucet", "203.0.113.7")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = request(server, http.MethodPost, "/api/faucet", "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// the exhausted origin can still read health and stats as often as it likes
	for i := 0; i < 5; i++ {
		rec = request(server, http.MethodGet, "/api/health", "203.0.113.7")
		assert.Equal(t, http.StatusOK, rec.Code)
		rec = request(server, http.MethodGet, "/api/stats", "203.0.113.7")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	server := newTestServer(t)

	rec := request(server, http.MethodGet, "/api/nope", "203.0.113.7")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response jsonmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "API endpoint not found", response.Error)
}
