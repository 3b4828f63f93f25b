package handler

import (
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/internal/pkg/serverutils"
	"research-agent-be/internal/service"
	internalWS "research-agent-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

type LiveChatHandler struct {
	service   service.IResearchService
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewLiveChatHandler(svc service.IResearchService, hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *LiveChatHandler {
	return &LiveChatHandler{
		service:   svc,
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (h *LiveChatHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/research/:id", h.ServeWs)
}

// ServeWs upgrades the request and attaches it to an existing research session.
func (h *LiveChatHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	if h.jwtSecret != "" {
		// Browsers cannot set headers on the handshake, so the query param comes first
		tokenStr := c.Query("token")
		if tokenStr == "" {
			authHeader := c.Get("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenStr = authHeader[7:]
			}
		}
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			h.logger.Warn("LiveChatHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
			return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}
	}

	sessionID := c.Params("id")
	if _, err := h.service.GetSession(c.UserContext(), sessionID); err != nil {
		return err
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("LiveChatHandler", "Starting live chat", map[string]interface{}{"session_id": sessionID})
		internalWS.ServeWs(h.hub, h.service, conn, sessionID)
		h.logger.Info("LiveChatHandler", "Live chat ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}
