package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wizardchad/forum/internal/forum/live"
	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/sessionx"
	"github.com/wizardchad/forum/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	sessions *sessionx.Manager

	Hub                *live.Hub
	UserService        *service.UserService
	PostService        *service.PostService
	ConcentrateService *service.ConcentrateService
}

func NewRouter(
	sessions *sessionx.Manager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	// Every request gets request-scoped logging and a resolved session,
	// in that order.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.sessionMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMe()
	r.registerThreads()
	r.registerConcentrate()
	r.registerLive()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{UserService: r.UserService, Sessions: r.sessions}
	loginHandler := &LoginHandler{UserService: r.UserService, Sessions: r.sessions}
	logoutHandler := &LogoutHandler{Sessions: r.sessions}

	// Credential endpoints are brute-forceable, so they carry the strict
	// limit.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMe() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			RequireUser,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/me/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			RequireUser,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/me/password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			RequireUser,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerThreads() {
	threads := &ThreadsHandler{PostService: r.PostService}
	replies := &RepliesHandler{PostService: r.PostService, Hub: r.Hub}

	// Reads are public; anything that writes requires a logged-in user.
	r.Mux.Handle("GET /v1/threads",
		httpx.Chain(http.HandlerFunc(threads.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/threads/{id}",
		httpx.Chain(http.HandlerFunc(threads.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/threads",
		httpx.Chain(http.HandlerFunc(threads.HandleCreate),
			RequireUser,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/threads/{id}",
		httpx.Chain(http.HandlerFunc(threads.HandleDelete),
			RequireUser,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/threads/{id}/replies",
		httpx.Chain(http.HandlerFunc(replies.HandleCreate),
			RequireUser,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerConcentrate() {
	h := &ConcentrateHandler{ConcentrateService: r.ConcentrateService, Hub: r.Hub}

	r.Mux.Handle("GET /v1/concentrate",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			RequireUser,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/concentrate",
		httpx.Chain(http.HandlerFunc(h.HandlePress),
			RequireUser,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerLive() {
	// The upgrade endpoint is the only path the upgrader ever sees.
	r.Mux.Handle("GET /ws", &live.Handler{Hub: r.Hub})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
