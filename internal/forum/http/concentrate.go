package http

import (
	"net/http"

	"github.com/wizardchad/forum/internal/forum/live"
	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type ConcentrateHandler struct {
	ConcentrateService *service.ConcentrateService
	Hub                *live.Hub
}

type concentrateResponse struct {
	Count int64 `json:"count"`
}

// HandleGet returns the current concentration count.
func (h *ConcentrateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.ConcentrateService.Count(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, concentrateResponse{Count: count})
}

// HandlePress increments the count. The new value is committed before the
// requester hears it, and the requester hears it before the live feed does.
func (h *ConcentrateHandler) HandlePress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	count, err := h.ConcentrateService.Press(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, concentrateResponse{Count: count})

	h.Hub.Publish("concentrate", count)
}
