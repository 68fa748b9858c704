package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client is one websocket connection subscribed to a browser profile's changes.
type Client struct {
	hub      *Hub
	ClientID string
	conn     *websocket.Conn
	send     chan []byte
}

// StorageEvent tells a subscriber that one of its keys was written or removed.
type StorageEvent struct {
	Type      string    `json:"type"`
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub fans client-store changes out to the connections of the owning client.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *zap.Logger
	mu         sync.RWMutex
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes registrations until ctx is done, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.ClientID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.ClientID] = set
			}
			set[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("Websocket client registered", zap.String("clientId", client.ClientID))

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()
			h.logger.Debug("Websocket client unregistered", zap.String("clientId", client.ClientID))

		case <-ctx.Done():
			h.mu.Lock()
			for _, set := range h.clients {
				for client := range set {
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// removeLocked must be called with mu held.
func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.ClientID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.ClientID)
	}
}

// KeyChanged implements the client store's change listener.
func (h *Hub) KeyChanged(clientID, key string) {
	data, err := json.Marshal(StorageEvent{Type: "storage", Key: key, Timestamp: time.Now().UTC()})
	if err != nil {
		h.logger.Error("Failed to marshal storage event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[clientID] {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("Websocket send buffer full, dropping event", zap.String("clientId", clientID), zap.String("key", key))
		}
	}
}

// Connected reports how many connections clientID has open.
func (h *Hub) Connected(clientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[clientID])
}
