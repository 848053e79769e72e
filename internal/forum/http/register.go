package http

import (
	"encoding/json"
	"net/http"

	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/sessionx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
	Sessions    *sessionx.Manager
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP creates an account and logs the new user straight in.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	sess, _ := ctx.Value(httpx.CtxKeySession).(*sessionx.Session)
	if sess == nil {
		sess = &sessionx.Session{}
	}
	sess.SetUserID(user.ID)
	if err := h.Sessions.Save(w, sess); err != nil {
		log.Error("failed to issue session cookie", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("user registered", "user_id", user.ID, "username", user.Username)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, newUserView(user))
}
