// Package live pushes state-change events to connected browsers over
// websockets so pages update without polling. Delivery is best-effort and
// at-most-once per connection; a client that was not connected at publish
// time never sees the event.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event is the wire format in both directions: a message type and an
// arbitrary JSON payload. Clients dispatch on Type with per-type listener
// lists and ignore types they have no listener for.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks the set of open live connections and fans events out to them.
// It is the sole owner of client lifetimes: a client is in the hub exactly
// between a completed upgrade handshake and a completed teardown.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// unregister is idempotent; removing an already-removed client is a no-op.
// Broadcast failures and connection teardown race to call it.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// snapshot returns a point-in-time view of the open connections so Publish
// can iterate without holding the lock across sends.
func (h *Hub) snapshot() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

// Len returns the number of currently open connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish delivers an event to every connection registered at call time.
// It never blocks on a slow consumer: each client owns a bounded outbound
// queue, and a client whose queue is full is torn down like a dead one. A
// failed send to one client never affects delivery to the others.
func (h *Hub) Publish(eventType string, data any) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.logger.Error("failed to encode live event", "type", eventType, "err", err)
		return
	}

	for _, c := range h.snapshot() {
		if c.enqueue(payload) {
			continue
		}

		h.logger.Warn("dropping unresponsive live connection",
			"conn_id", c.id, "type", eventType)
		h.unregister(c)
		c.close()
	}
}

// Shutdown closes every open connection. Used during graceful shutdown.
func (h *Hub) Shutdown() {
	for _, c := range h.snapshot() {
		h.unregister(c)
		c.close()
	}
}
