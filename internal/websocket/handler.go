package websocket

import (
	"context"
	"encoding/json"

	"research-agent-be/internal/service"

	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches the connection to its session and runs until it closes.
func ServeWs(hub *Hub, svc service.IResearchService, c *websocket.Conn, sessionID string) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, 256), service: svc}
	if !hub.join(client) {
		c.Close()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.writePump()
	client.readPump(ctx)
}

func mustMarshal(f Frame) []byte {
	data, _ := json.Marshal(f)
	return data
}
