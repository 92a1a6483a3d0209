package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"redline-garage/pitwall/internal/api"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/db/testdb"
	"redline-garage/pitwall/internal/metrics"
)

func newRouter(t *testing.T, burst int) (http.Handler, *api.Dependencies) {
	t.Helper()

	gormDB := testdb.New(t)
	cfg := &config.Config{
		StatsCacheTTL:  time.Minute,
		JWTSecret:      "router-secret",
		JWTIssuer:      "pitwall",
		RateLimitRPS:   0.001,
		RateLimitBurst: burst,
	}

	deps, err := api.InitDependencies(
		cfg,
		gormDB,
		testdb.Sqlx(t, gormDB),
		common.NewCacheService(time.Minute, time.Minute),
		metrics.NewMetricsRegistry(prometheus.NewRegistry()),
		clockz.NewFakeClock(),
	)
	require.NoError(t, err)

	return RegisterRoutes(deps, cfg, time.Now()), deps
}

func bearer(t *testing.T, deps *api.Dependencies, userID string) string {
	t.Helper()

	token, err := deps.Tokens.Issue(userID, "Driver "+userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func send(h http.Handler, method, path, authz, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const vehicleBody = `{"year":2005,"make":"Subaru","model":"Impreza WRX STI","current_mileage":45000}`

func TestRouter_PublicReadsNeedNoToken(t *testing.T) {
	h, _ := newRouter(t, 10)

	assert.Equal(t, http.StatusOK, send(h, http.MethodGet, "/api/v1/options", "", "").Code)
	assert.Equal(t, http.StatusOK, send(h, http.MethodGet, "/api/v1/vehicles", "", "").Code)
	assert.Equal(t, http.StatusOK, send(h, http.MethodGet, "/healthCheck", "", "").Code)
}

func TestRouter_MutationsRequireToken(t *testing.T) {
	h, deps := newRouter(t, 10)

	rec := send(h, http.MethodPost, "/api/v1/vehicles", "", vehicleBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = send(h, http.MethodPost, "/api/v1/vehicles", "Bearer garbage", vehicleBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = send(h, http.MethodPost, "/api/v1/vehicles", bearer(t, deps, "driver-1"), vehicleBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = send(h, http.MethodGet, "/api/v1/me/vehicles", bearer(t, deps, "driver-1"), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Impreza WRX STI")

	assert.Equal(t, http.StatusUnauthorized, send(h, http.MethodGet, "/api/v1/me/garage/stats", "", "").Code)
}

func TestRouter_FirstAuthenticatedRequestRecordsUser(t *testing.T) {
	h, deps := newRouter(t, 10)

	rec := send(h, http.MethodGet, "/api/v1/me", bearer(t, deps, "driver-2"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Driver driver-2")

	user, err := deps.Repo.User.GetByID(t.Context(), "driver-2")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestRouter_MutationsAreRateLimited(t *testing.T) {
	h, deps := newRouter(t, 2)
	authz := bearer(t, deps, "driver-3")

	assert.Equal(t, http.StatusCreated, send(h, http.MethodPost, "/api/v1/vehicles", authz, vehicleBody).Code)
	assert.Equal(t, http.StatusCreated, send(h, http.MethodPost, "/api/v1/vehicles", authz, vehicleBody).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(h, http.MethodPost, "/api/v1/vehicles", authz, vehicleBody).Code)

	// reads are not limited
	assert.Equal(t, http.StatusOK, send(h, http.MethodGet, "/api/v1/me/vehicles", authz, "").Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, _ := newRouter(t, 10)

	rec := send(h, http.MethodGet, "/api/v1/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}
