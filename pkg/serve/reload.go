package serve

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadKind is the kind of livereload message.
type ReloadKind string

const (
	ReloadFull  ReloadKind = "reload"
	ReloadCSS   ReloadKind = "css"
	ReloadError ReloadKind = "error"
	ReloadClear ReloadKind = "clear"
)

// ReloadMessage is sent to connected browsers over the WebSocket.
type ReloadMessage struct {
	Kind  ReloadKind `json:"kind"`
	Error string     `json:"error,omitempty"`
	File  string     `json:"file,omitempty"`
}

// ReloadHub manages livereload WebSocket connections during development.
type ReloadHub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewReloadHub creates an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev only, any origin
			},
		},
	}
}

// HandleWebSocket upgrades the connection and keeps it registered until
// the client disconnects.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyReload tells all clients to reload the page.
func (h *ReloadHub) NotifyReload() {
	h.broadcast(ReloadMessage{Kind: ReloadFull})
}

// NotifyCSS tells all clients to re-fetch stylesheets only.
func (h *ReloadHub) NotifyCSS(file string) {
	h.broadcast(ReloadMessage{Kind: ReloadCSS, File: file})
}

// NotifyError shows an error overlay on all clients.
func (h *ReloadHub) NotifyError(msg string) {
	h.broadcast(ReloadMessage{Kind: ReloadError, Error: msg})
}

// ClearError removes the error overlay on all clients.
func (h *ReloadHub) ClearError() {
	h.broadcast(ReloadMessage{Kind: ReloadClear})
}

// broadcast sends a message to every connected client, dropping clients
// whose connection has gone away.
func (h *ReloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			c.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
	}
	h.clients = make(map[*websocket.Conn]bool)
}
