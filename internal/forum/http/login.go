package http

import (
	"encoding/json"
	"net/http"

	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/sessionx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type LoginHandler struct {
	UserService *service.UserService
	Sessions    *sessionx.Manager
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP verifies credentials and issues a fresh session cookie.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
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

	log.Info("user logged in", "user_id", user.ID)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, newUserView(user))
}
