package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"doc-agent-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans change events out to every connected presentation client: upload
// task transitions, appended turns, document list changes.
type Hub struct {
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fanout
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": len(h.clients)})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": len(h.clients)})
		}
	}
}

// Broadcast sends an event frame to ALL connected clients and mirrors it to
// other instances through Redis.
func (h *Hub) Broadcast(event string, data interface{}) {
	// 1. Serialize
	frame, _ := json.Marshal(map[string]interface{}{
		"type": event,
		"data": data,
	})

	// 2. Send to all local clients
	h.sendLocal(frame)

	// 3. Publish to Redis for other instances
	if h.rdb != nil {
		payload := map[string]interface{}{
			"message": frame,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) sendLocal(frame []byte) {
	h.mu.RLock()
	var stale []*Client
	for client := range h.clients {
		select {
		case client.Send <- frame:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	// Drop clients whose buffers are full; they reconnect and resync.
	for _, client := range stale {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", nil)
		h.mu.Lock()
		if _, ok := h.clients[client]; ok {
			delete(h.clients, client)
			close(client.Send)
		}
		h.mu.Unlock()
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to "cluster_events" and re-broadcasts frames
	// published by its peers to its own local clients.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		h.sendLocal(payload.Message)
	}
}
