package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/slogx"
)

// sessionMiddleware decodes the session cookie and attaches the resolved
// identity to the request context. It runs on every route, so downstream
// handlers only ever consult the context.
//
// A cookie naming a user that no longer exists is scrubbed in place: the
// user ID is cleared and a fresh anonymous cookie is issued, then the
// request continues as anonymous. The next request carries a clean cookie.
func (rt *Router) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		sess := rt.sessions.Load(r)
		ctx = context.WithValue(ctx, httpx.CtxKeySession, sess)

		if id := sess.UserID(); id != "" {
			user, err := rt.UserService.GetUserByID(ctx, id)
			switch {
			case err == nil:
				ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
				ctx = context.WithValue(ctx, httpx.CtxKeyUser, user)
			case errors.Is(err, store.ErrNotFound):
				log.Info("session referenced a deleted user, clearing", "user_id", id)
				sess.ClearUserID()
				if err := rt.sessions.Save(w, sess); err != nil {
					log.Error("failed to reissue session cookie", "err", err)
				}
			default:
				log.Error("failed to resolve session user", "user_id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects anonymous requests. Must run after the session
// middleware has populated the context.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httpx.UserIDFromContext(r.Context()) == "" {
			writeError(w, http.StatusForbidden, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
