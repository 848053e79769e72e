package http

import (
	"encoding/json"
	"net/http"

	"github.com/wizardchad/forum/internal/forum/live"
	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type RepliesHandler struct {
	PostService *service.PostService
	Hub         *live.Hub
}

type createReplyRequest struct {
	Content string `json:"content"`
}

// HandleCreate posts a reply to an existing thread. The requester gets
// their response first; everyone on the live feed hears about the reply
// right after.
func (h *RepliesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.PostService.CreateReply(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), req.Content)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("reply created", "reply_id", reply.ID, "thread_id", reply.ThreadID)

	view := newReplyView(reply)
	httpx.WriteJSON(w, http.StatusCreated, view)

	h.Hub.Publish("reply", view)
}
