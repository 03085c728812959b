package events

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// ClusterStatusEvent is pushed to subscribers whenever a cluster update
// finishes recomputing a cluster.
type ClusterStatusEvent struct {
	ClusterID         uint   `json:"cluster_id"`
	PaymentStatus     string `json:"payment_status"`
	TotalTickets      string `json:"total_tickets"`
	TotalTransactions string `json:"total_transactions"`
}

// Hub fans cluster status events out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Broadcast sends the event to every client, dropping clients whose
// connection has gone away.
func (h *Hub) Broadcast(event ClusterStatusEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("events: dropping client: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
