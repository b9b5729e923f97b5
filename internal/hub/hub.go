package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Event is a game change sent to subscribed clients.
type Event struct {
	Type   string    `json:"type"`
	GameID uint      `json:"game_id"`
	At     time.Time `json:"at"`
}

// Client is the channel a streaming handler reads encoded events from.
type Client chan []byte

const clientBuffer = 16

// Hub fans game events out to every connected client.
type Hub struct {
	clients map[Client]struct{}
	mu      sync.RWMutex
}

func New() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

// Subscribe registers a new client.
func (h *Hub) Subscribe() Client {
	client := make(Client, clientBuffer)
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	return client
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Publish broadcasts a game event. Slow clients miss events instead of blocking the caller.
func (h *Hub) Publish(ctx context.Context, kind string, gameID uint) {
	payload, err := json.Marshal(Event{Type: kind, GameID: gameID, At: time.Now().UTC()})
	if err != nil {
		logx.WithContext(ctx).Errorw("encode game event", logx.Field("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client <- payload:
		default:
			logx.WithContext(ctx).Infow("dropping game event for slow client", logx.Field("type", kind))
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
