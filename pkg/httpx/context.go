package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated user's ID as a string, or is
	// absent for anonymous requests.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyUser holds the full identity record attached by the session
	// middleware. Its concrete type belongs to the application layer.
	CtxKeyUser ctxKey = "user"

	// CtxKeySession holds the mutable request-scoped session bag.
	CtxKeySession ctxKey = "session"
)

// UserIDFromContext returns the authenticated user ID, or "" for anonymous
// requests.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
