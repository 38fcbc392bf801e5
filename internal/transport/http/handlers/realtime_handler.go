package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
	"github.com/taskcollab/backend/internal/transport/ws"
)

type RealtimeHandler struct {
	hub    *ws.Hub
	logger *logger.Logger
}

func NewRealtimeHandler(hub *ws.Hub, logger *logger.Logger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, logger: logger}
}

// Handle keeps the connection registered with the hub until the client goes
// away. Inbound frames are drained and ignored; viewers only listen.
func (h *RealtimeHandler) Handle(c *websocket.Conn) {
	h.hub.Register(c)
	h.logger.Infow("ws_client_connected", "clients", h.hub.ClientCount())

	defer func() {
		h.hub.Unregister(c)
		c.Close()
		h.logger.Infow("ws_client_disconnected", "clients", h.hub.ClientCount())
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
