package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadPath is where browsers open the reload WebSocket.
const ReloadPath = "/_routegen/reload"

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
}

// ReloadHub manages WebSocket connections for live reload. A client that
// connects while a generation error is pending receives it immediately.
type ReloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	pending  *ReloadMessage
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadHub creates a new reload hub.
func NewReloadHub(logger *slog.Logger) *ReloadHub {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// the page and the dev server listen on different ports
				return true
			},
		},
		logger: logger,
	}
}

// HandleWebSocket upgrades the request and holds the connection until the
// client goes away.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	pending := h.pending
	h.mu.Unlock()
	h.logger.Debug("reload client connected", "remote", req.RemoteAddr)

	if pending != nil {
		h.send(conn, *pending)
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

// NotifyReload asks every client to reload.
func (h *ReloadHub) NotifyReload() {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyError shows errMsg in every client's overlay.
func (h *ReloadHub) NotifyError(errMsg string) {
	msg := ReloadMessage{Type: ReloadTypeError, Error: errMsg}
	h.mu.Lock()
	h.pending = &msg
	h.mu.Unlock()
	h.broadcast(msg)
}

// ClearError removes the overlay. It is a no-op when no error is pending.
func (h *ReloadHub) ClearError() {
	h.mu.Lock()
	hadError := h.pending != nil
	h.pending = nil
	h.mu.Unlock()
	if hadError {
		h.broadcast(ReloadMessage{Type: ReloadTypeClear})
	}
}

// PendingError returns the error clients are currently shown, if any.
func (h *ReloadHub) PendingError() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.pending == nil {
		return ""
	}
	return h.pending.Error
}

func (h *ReloadHub) broadcast(msg ReloadMessage) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.send(client, msg)
	}
}

func (h *ReloadHub) send(conn *websocket.Conn, msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	h.writeMu.Unlock()
	if err != nil {
		h.remove(conn)
	}
}

func (h *ReloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
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

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
