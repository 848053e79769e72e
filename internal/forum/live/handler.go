package live

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/wizardchad/forum/pkg/slogx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed carries only public state-change notifications; any page
	// served by this host may subscribe.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades requests on the well-known live path and hands the
// resulting connection to the hub. Registered on exactly one route; every
// other path never reaches the upgrader.
type Handler struct {
	Hub *Hub
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its error response.
		log.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := newClient(h.Hub, conn, log)
	h.Hub.register(c)
	c.logger.Info("live connection opened")

	go c.writePump()
	go c.readPump()
}
