package ws

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/WiL-dev/econstruct/internal/log"
)

// Client represents a connected WebSocket client bound to one session.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Hub tracks WebSocket clients by session so pushes reach only the session
// they belong to.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*Client]bool
	bySession map[string][]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]bool),
		bySession: make(map[string][]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
	h.bySession[c.sessionID] = append(h.bySession[c.sessionID], c)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)

	peers := h.bySession[c.sessionID]
	for i, peer := range peers {
		if peer == c {
			h.bySession[c.sessionID] = append(peers[:i], peers[i+1:]...)
			break
		}
	}
	if len(h.bySession[c.sessionID]) == 0 {
		delete(h.bySession, c.sessionID)
	}
}

// SendTo delivers a message to every client of one session.
func (h *Hub) SendTo(sessionID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.bySession[sessionID] {
		select {
		case c.send <- msg:
		default:
			// Client buffer full, skip
			log.Ctx(context.Background()).Warn("client buffer full, dropping message", "session", sessionID)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
