package chat

import (
	"sync"

	"github.com/gorilla/websocket"

	"tourbook/internal/domain"
)

type EventType string

const (
	EventNewMessage EventType = "new_message"
)

// Event is the push payload delivered over an open websocket. Polling
// clients see the same data through GET messages with after_id.
type Event struct {
	Type           EventType       `json:"type"`
	ConversationID int64           `json:"conversation_id"`
	Message        *domain.Message `json:"message,omitempty"`
}

// client wraps one websocket. gorilla allows a single concurrent writer, so
// every write goes through the per-connection mutex.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (cl *client) write(ev Event) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(ev)
}

// Hub tracks one live websocket per user. A second connection for the same
// user replaces the first.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int64]*client)}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.clients[userID]; ok && old != nil {
		_ = old.conn.Close()
	}
	h.clients[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cl, ok := h.clients[userID]; ok && cl != nil {
		_ = cl.conn.Close()
		delete(h.clients, userID)
	}
}

// Push delivers the event to both sides of a dialog. Delivery is best
// effort; an offline user picks the message up on the next poll.
func (h *Hub) Push(senderID, recipientID int64, ev Event) {
	h.send(senderID, ev)
	h.send(recipientID, ev)
}

func (h *Hub) send(userID int64, ev Event) {
	h.mu.RLock()
	cl := h.clients[userID]
	h.mu.RUnlock()

	if cl == nil {
		return
	}
	if err := cl.write(ev); err != nil {
		h.drop(userID, cl)
	}
}

// drop evicts the client only if it is still the registered one, so a failed
// write on a stale connection cannot kick out its replacement.
func (h *Hub) drop(userID int64, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cur, ok := h.clients[userID]; ok && cur == cl {
		_ = cl.conn.Close()
		delete(h.clients, userID)
	}
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.clients[userID]
	return ok
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, cl := range h.clients {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, userID)
	}
}
