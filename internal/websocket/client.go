package websocket

import (
	"context"
	"errors"
	"time"

	"research-agent-be/internal/dto"
	"research-agent-be/internal/pkg/serverutils"
	"research-agent-be/internal/service"
	"research-agent-be/pkg/agent/session"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	// Research session this connection is attached to
	SessionID string

	// Buffered channel of outbound messages.
	Send chan []byte

	service service.IResearchService
}

// readPump treats every text frame as one user turn.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.Hub.leave(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Unexpected close", map[string]interface{}{
					"session_id": c.SessionID,
					"error":      err.Error(),
				})
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		c.handleTurn(ctx, string(raw))
	}
}

func (c *Client) handleTurn(ctx context.Context, text string) {
	req := &dto.SendChatRequest{ChatSessionId: c.SessionID, Chat: text}
	if err := serverutils.ValidateRequest(req); err != nil {
		c.sendError(err.Error())
		return
	}

	res, err := c.service.SendChat(ctx, req)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.sendError(err.Error())
			return
		}
		c.Hub.logger.Error("Client", "Turn failed", map[string]interface{}{
			"session_id": c.SessionID,
			"error":      err.Error(),
		})
		c.sendError("Failed to process message")
		return
	}

	c.Hub.Deliver(c.SessionID, Frame{Type: FrameReply, Data: res})
}

// sendError answers only the connection that sent the turn.
func (c *Client) sendError(message string) {
	c.Hub.sendTo(c, mustMarshal(Frame{Type: FrameError, Message: message}))
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// one frame per reply, clients parse each message as JSON
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
