package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"` // "speed", "pong", "error"
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// SpeedPayload is what subscribers receive on every sampling tick
type SpeedPayload struct {
	Display  string `json:"display"` // "↓ 12.3 KB/s ↑ 0.0 B/s"
	Download string `json:"download"`
	Upload   string `json:"upload"`
}

// ClientConnection represents a connected WebSocket client
type ClientConnection struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan WebSocketMessage
	Close chan bool
}

// WebSocketHub fans each sampling tick out to all connected clients.
// Unlike a polling hub, it holds no ticker of its own: the sampler
// callback drives broadcasts.
type WebSocketHub struct {
	clients    map[string]*ClientConnection
	broadcast  chan WebSocketMessage
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	done       chan bool
}

var wsHub *WebSocketHub

// InitWebSocketHub initializes the WebSocket hub and starts its event loop
func InitWebSocketHub() *WebSocketHub {
	wsHub = &WebSocketHub{
		clients:    make(map[string]*ClientConnection),
		broadcast:  make(chan WebSocketMessage, 256),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		done:       make(chan bool),
	}

	go wsHub.run()
	return wsHub
}

// GetWebSocketHub returns the initialized hub
func GetWebSocketHub() *WebSocketHub {
	return wsHub
}

func (h *WebSocketHub) run() {
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (total: %d)", client.ID, total)

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s (total: %d)", clientID, total)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Client's send channel is full, skip this message
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastSpeed pushes one tick's formatted speeds to all clients
func (h *WebSocketHub) BroadcastSpeed(download, upload string) {
	payload := SpeedPayload{
		Display:  "↓ " + download + " ↑ " + upload,
		Download: download,
		Upload:   upload,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[WS] Error marshaling speed payload: %v", err)
		return
	}

	msg := WebSocketMessage{
		Type:      "speed",
		Timestamp: time.Now(),
		Data:      json.RawMessage(data),
	}

	select {
	case h.broadcast <- msg:
	default:
		// Channel full, drop this broadcast
	}
}

// Register adds a new client to the hub
func (h *WebSocketHub) Register(client *ClientConnection) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *WebSocketHub) Unregister(clientID string) {
	h.unregister <- clientID
}

// StopWebSocketHub gracefully stops the hub
func StopWebSocketHub() {
	if wsHub != nil {
		wsHub.done <- true
	}
}
