package ws

import (
	"log/slog"
	"sync"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/metrics"
)

// Frame is a single message pushed to connected chat clients.
type Frame struct {
	Type    string      `json:"type"`
	GroupID string      `json:"groupId"`
	Data    interface{} `json:"data"`
}

const (
	FrameTypeMessage = "message"
	FrameTypePing    = "ping"
	FrameTypePong    = "pong"
)

// Hub tracks websocket clients per chat group and fans messages out to them.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	room, ok := h.rooms[c.groupID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[c.groupID] = room
	}
	room[c] = true
	total := len(room)
	h.mu.Unlock()

	metrics.WebsocketConnected(1)
	h.logger.Info("websocket client connected", "groupId", c.groupID, "clients", total)
}

func (h *Hub) unregister(c *Client) {
	removed := false
	h.mu.Lock()
	if room, ok := h.rooms[c.groupID]; ok {
		if _, ok := room[c]; ok {
			delete(room, c)
			close(c.send)
			removed = true
		}
		if len(room) == 0 {
			delete(h.rooms, c.groupID)
		}
	}
	h.mu.Unlock()

	if !removed {
		return
	}
	metrics.WebsocketConnected(-1)
	h.logger.Info("websocket client disconnected", "groupId", c.groupID)
}

// Broadcast sends data to every client connected to the group. Slow clients
// whose send buffer is full are dropped rather than blocking the caller.
func (h *Hub) Broadcast(groupID, frameType string, data interface{}) {
	payload, err := json.Marshal(Frame{Type: frameType, GroupID: groupID, Data: data})
	if err != nil {
		h.logger.Error("marshal websocket frame", "error", err)
		return
	}

	h.mu.RLock()
	room := h.rooms[groupID]
	stale := make([]*Client, 0)
	for c := range room {
		select {
		case c.send <- payload:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unregister(c)
	}
}
