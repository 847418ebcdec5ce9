package server

import (
	"encoding/json"
	"sync"
)

// Hub fans game events out to websocket clients. Every client subscribes to
// exactly one game; payloads carry the game id and Run only delivers them to
// that game's clients.
type Hub struct {
	mu               sync.Mutex
	clients          map[*Client]struct{}
	broadcastStatus  chan StatusResponse
	broadcastHistory chan historyPayload
	broadcastReset   chan StatusResponse
	broadcastAssist  chan analysisDTO
}

type Client struct {
	hub    *Hub
	gameID string
	send   chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:          make(map[*Client]struct{}),
		broadcastStatus:  make(chan StatusResponse, 32),
		broadcastHistory: make(chan historyPayload, 32),
		broadcastReset:   make(chan StatusResponse, 8),
		broadcastAssist:  make(chan analysisDTO, 16),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.publish(payload.GameID, wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastHistory:
			h.publish(payload.GameID, wsMessage{Type: "history", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastReset:
			h.publish(payload.GameID, wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastAssist:
			h.publish(payload.GameID, wsMessage{Type: "suggestion", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) publish(gameID string, msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		if client.gameID == gameID {
			client.sendJSON(msg)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients(gameID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.gameID == gameID {
			return true
		}
	}
	return false
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
