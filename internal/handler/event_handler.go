package handler

import (
	"io"
	"time"

	"gamevault/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 30 * time.Second

type EventHandler struct {
	hub *hub.Hub
}

func NewEventHandler(h *hub.Hub) *EventHandler {
	return &EventHandler{hub: h}
}

// StreamGameEvents godoc
// @Summary      Stream game changes
// @Description  Server-sent events for every game update, deletion and restore.
// @Tags         games
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string  "event stream"
// @Router       /games/events [get]
func (h *EventHandler) StreamGameEvents(c *gin.Context) {
	client := h.hub.Subscribe()
	defer h.hub.Unsubscribe(client)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("game", string(msg))
			return true
		case <-ticker.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}
