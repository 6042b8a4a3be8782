package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/transitiongate/internal/scenario"
)

const (
	writeWait = 5 * time.Second

	// sendBuffer is how many messages may wait for a client before it is
	// dropped as too slow.
	sendBuffer = 32
)

// MessageType is the type of a message pushed to browsers.
type MessageType string

const (
	MessageFrame MessageType = "frame"
	MessageError MessageType = "error"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type  MessageType     `json:"type"`
	Frame *scenario.Frame `json:"frame,omitempty"`
	Error string          `json:"error,omitempty"`
}

// client is one browser connection. Messages are queued on send and
// written by the client's own goroutine, so a slow browser never blocks
// the caller of broadcast.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Hub manages WebSocket connections that receive frames.
type Hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// greet returns the message sent to a client when it connects.
	greet func() *Message
}

// NewHub creates a hub. greet may be nil.
func NewHub(greet func() *Message) *Hub {
	return &Hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in preview
			},
		},
		greet: greet,
	}
}

// HandleWebSocket handles WebSocket upgrade and connection. The client is
// registered and greeted under the hub lock, so no broadcast can slip in
// between the greeting and registration.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	go c.writePump()

	h.mu.Lock()
	h.clients[c] = true
	if h.greet != nil {
		if msg := h.greet(); msg != nil {
			if data, err := json.Marshal(msg); err == nil {
				c.send <- data
			}
		}
	}
	h.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(c)
}

// PushFrame sends a frame to all clients.
func (h *Hub) PushFrame(f scenario.Frame) {
	h.broadcast(Message{Type: MessageFrame, Frame: &f})
}

// PushError sends an error message to all clients.
func (h *Hub) PushError(errMsg string) {
	h.broadcast(Message{Type: MessageError, Error: errMsg})
}

// broadcast queues a message for every client without blocking. Clients
// whose queue is full are dropped.
func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.remove(c)
	}
}

// remove unregisters c and stops its writer. It is safe to call more
// than once.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
