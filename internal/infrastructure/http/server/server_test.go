package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func okCheck(name string) HealthCheck {
	return HealthCheck{Name: name, Check: func(context.Context) error { return nil }}
}

func failingCheck(name string) HealthCheck {
	return HealthCheck{Name: name, Check: func(context.Context) error { return errors.New("connection refused") }}
}

func runHealth(t *testing.T, checks ...HealthCheck) (int, HealthResponse) {
	t.Helper()

	var ctx fasthttp.RequestCtx
	NewHealthHandler(checks, zerolog.Nop()).Handle(&ctx)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return ctx.Response.StatusCode(), resp
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	status, resp := runHealth(t, okCheck("postgres"), okCheck("redis"))

	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, HealthStatusHealthy, resp.Status)
	assert.Len(t, resp.Components, 2)
}

func TestHealthHandler_Degraded(t *testing.T) {
	status, resp := runHealth(t, okCheck("postgres"), failingCheck("redis"))

	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, HealthStatusDegraded, resp.Status)
	assert.Equal(t, "connection refused", resp.Components[1].Message)
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	status, resp := runHealth(t, failingCheck("postgres"))

	assert.Equal(t, fasthttp.StatusServiceUnavailable, status)
	assert.Equal(t, HealthStatusUnhealthy, resp.Status)
}

func TestServer_InstrumentsRequests(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	srv := NewServer("test", "0", m, zerolog.Nop())
	srv.Router.GET("/ping", func(ctx *fasthttp.RequestCtx) {
		WriteJSON(ctx, fasthttp.StatusOK, map[string]string{"pong": "ok"})
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/ping")
	srv.Handler()(&ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "200")))
}

func TestUserID(t *testing.T) {
	var ctx fasthttp.RequestCtx
	assert.Empty(t, UserID(&ctx))

	SetUserID(&ctx, "user-1")
	assert.Equal(t, "user-1", UserID(&ctx))
}
