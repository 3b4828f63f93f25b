package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/pkg/serverutils"
	"research-agent-be/internal/repository/memory"
	"research-agent-be/internal/service"
	internalWS "research-agent-be/internal/websocket"
	"research-agent-be/pkg/agent/intent"
	"research-agent-be/pkg/agent/responder"
	"research-agent-be/pkg/agent/session"
	"research-agent-be/pkg/agent/state"
	"research-agent-be/pkg/knowledge"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerApp(secret string) *fiber.App {
	log := logger.NewNopLogger()
	kb := knowledge.NewSeedStore()
	resp := responder.NewResponder(kb, intent.NewClassifier(), state.NewManager(log), log, 0)
	sm := session.NewManager(memory.NewSessionRepository(time.Hour, time.Minute), log)
	svc := service.NewResearchService(sm, resp, kb, nil, log)
	hub := internalWS.NewHub(nil, "test", nil, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewLiveChatHandler(svc, hub, secret, log).RegisterRoutes(app)
	return app
}

func TestServeWsRejects(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		upgrade bool
		code    int
	}{
		{"plain http", "", false, fiber.StatusUpgradeRequired},
		{"missing token", "s3cret", true, fiber.StatusUnauthorized},
		{"unknown session", "", true, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newHandlerApp(tt.secret)
			req := httptest.NewRequest("GET", "/ws/research/0b7c0d4e-6f2a-4a57-9d3f-2a1f3b8e9c10", nil)
			if tt.upgrade {
				req.Header.Set("Connection", "Upgrade")
				req.Header.Set("Upgrade", "websocket")
				req.Header.Set("Sec-WebSocket-Version", "13")
				req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}
