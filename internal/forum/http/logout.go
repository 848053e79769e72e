package http

import (
	"net/http"

	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/sessionx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type LogoutHandler struct {
	Sessions *sessionx.Manager
}

// ServeHTTP drops the user ID from the session. Logging out while already
// anonymous is fine and returns the same response.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sess, _ := ctx.Value(httpx.CtxKeySession).(*sessionx.Session)
	if sess != nil && sess.UserID() != "" {
		userID := sess.UserID()
		sess.ClearUserID()
		if err := h.Sessions.Save(w, sess); err != nil {
			log.Error("failed to reissue session cookie", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		log.Info("user logged out", "user_id", userID)
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
