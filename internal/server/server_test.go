package server

import (
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"research-agent-be/internal/bootstrap"
	"research-agent-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			HubLogFilePath:     filepath.Join(dir, "hub.log"),
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Session: config.SessionConfig{
			Store:           config.SessionStoreMemory,
			TTL:             time.Hour,
			CleanupInterval: time.Minute,
		},
		Telemetry: config.TelemetryConfig{MetricsEnabled: true},
	}
}

func TestServerRoutes(t *testing.T) {
	cfg := testConfig(t)
	container := bootstrap.NewContainer(cfg)
	t.Cleanup(container.Close)
	app := New(cfg, container).GetApp()

	tests := []struct {
		name   string
		method string
		path   string
		code   int
	}{
		{"health", "GET", "/healthz", 200},
		{"status", "GET", "/api/research/v1/status", 200},
		{"companies", "GET", "/api/research/v1/companies", 200},
		{"create session", "POST", "/api/research/v1/session", 201},
		{"unknown session", "GET", "/api/research/v1/session/nope", 404},
		{"ws without upgrade", "GET", "/ws/research/nope", 426},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := testConfig(t)
	container := bootstrap.NewContainer(cfg)
	t.Cleanup(container.Close)
	app := New(cfg, container).GetApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "research_websocket_connections")
}

func TestAuthGuardsResearchAPI(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.JWTSecret = "s3cret"
	container := bootstrap.NewContainer(cfg)
	t.Cleanup(container.Close)
	app := New(cfg, container).GetApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/research/v1/session", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/research/v1/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
