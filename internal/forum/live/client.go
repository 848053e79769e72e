package live

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wizardchad/forum/pkg/idx"
)

const (
	// writeWait bounds a single send so one wedged peer cannot hold a
	// write pump goroutine forever.
	writeWait = 10 * time.Second

	// pongWait is how long we tolerate silence before assuming the peer
	// is gone; pings go out at pingPeriod to keep healthy peers talking.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Browsers never send application data on this socket.
	maxInboundSize = 512

	// outboundQueueSize bounds the per-connection send queue. A full
	// queue marks the consumer as unresponsive.
	outboundQueueSize = 32
)

// Client is one live duplex connection. Only the hub holds a reference to
// it, so an unexpectedly disconnected browser cannot leak.
type Client struct {
	id     idx.ID
	hub    *Hub
	conn   *websocket.Conn
	logger *slog.Logger

	send      chan []byte
	closeOnce sync.Once
}

func newClient(hub *Hub, conn *websocket.Conn, logger *slog.Logger) *Client {
	id := idx.New()
	return &Client{
		id:     id,
		hub:    hub,
		conn:   conn,
		logger: logger.With("conn_id", id.String()),
		send:   make(chan []byte, outboundQueueSize),
	}
}

// enqueue hands an encoded event to the write pump without blocking.
// Returns false when the outbound queue is full.
func (c *Client) enqueue(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// writePump drains the outbound queue onto the wire and keeps the
// connection alive with pings. One goroutine per connection; it exits when
// a write fails or the connection is closed.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.hub.unregister(c)
		c.close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Debug("live connection write failed", "err", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames. It exists to surface the close
// handshake and to feed the pong handler; any read error tears the
// connection down.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.close()
		c.logger.Info("live connection closed")
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
			) {
				c.logger.Warn("live connection read failed", "err", err)
			}
			return
		}
	}
}
