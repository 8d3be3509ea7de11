package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"bitewrap/internal/domain"
)

// Event is one change notification pushed to a user's devices.
type Event struct {
	Type     string `json:"type"`
	Date     string `json:"date,omitempty"`
	MealType string `json:"meal_type,omitempty"`
}

type Client struct {
	UserID int64
	Conn   *websocket.Conn

	// Gorilla allows only one concurrent writer per connection.
	writeMu sync.Mutex
}

func (c *Client) write(msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans log changes out to every connection a user holds. A failed
// write drops the client.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int64]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*Client]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *Hub) broadcast(userID int64, ev Event) {
	msg, _ := json.Marshal(ev)

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(msg); err != nil {
			h.Unregister(c)
		}
	}
}

// NotifyLogCreated implements the logs module's Notifier.
func (h *Hub) NotifyLogCreated(userID int64, date string, mealType domain.MealType) {
	h.broadcast(userID, Event{Type: "log.created", Date: date, MealType: string(mealType)})
}

// NotifyLogDeleted implements the logs module's Notifier.
func (h *Hub) NotifyLogDeleted(userID int64, date string, mealType domain.MealType) {
	h.broadcast(userID, Event{Type: "log.deleted", Date: date, MealType: string(mealType)})
}
