package ws

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/taskcollab/backend/internal/domain"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
)

// Conn is the subset of a websocket connection the hub needs.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// TextMessage mirrors the websocket text frame opcode.
const TextMessage = 1

// Hub rebroadcasts every message published on the task-updates channel to
// all connected viewers. Delivery is best effort: a client that fails a
// write is dropped, and messages published while the hub is down are lost.
// Viewers recover by re-fetching the task list on demand.
type Hub struct {
	log *logger.Logger

	mu      sync.Mutex
	clients map[Conn]struct{}
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{log: log, clients: make(map[Conn]struct{})}
}

func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes the message to every registered client, dropping and
// closing any client whose write fails.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	clients := make([]Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.WriteMessage(TextMessage, message); err != nil {
			h.log.Warnw("ws_client_write_failed", "error", err)
			h.Unregister(c)
			c.Close()
		}
	}
}

// Run subscribes to the task-updates channel and pumps messages into
// Broadcast until the context is cancelled.
func (h *Hub) Run(ctx context.Context, rdb *redis.Client) error {
	sub := rdb.Subscribe(ctx, domain.TaskUpdatesChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	h.log.Infow("ws_hub_subscribed", "channel", domain.TaskUpdatesChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			h.Broadcast([]byte(msg.Payload))
		}
	}
}
