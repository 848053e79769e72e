package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wizardchad/forum/internal/forum/domain"
	"github.com/wizardchad/forum/internal/forum/live"
	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/internal/forum/store/drivers/sqlite"
	"github.com/wizardchad/forum/pkg/sessionx"
	"github.com/wizardchad/forum/pkg/slogx"

	"github.com/stretchr/testify/require"
)

// countingStore wraps a real store and counts user lookups so tests can
// assert when the session middleware hits the database.
type countingStore struct {
	store.Store

	userLookups atomic.Int32
}

func (c *countingStore) Users() store.Users {
	return countingUsers{Users: c.Store.Users(), lookups: &c.userLookups}
}

type countingUsers struct {
	store.Users

	lookups *atomic.Int32
}

func (c countingUsers) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	c.lookups.Add(1)
	return c.Users.GetUserByID(ctx, id)
}

func TestSessionMiddlewareLookups(t *testing.T) {
	t.Parallel()

	inner, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "forum.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = inner.Close() })
	require.NoError(t, inner.ApplyMigrations())

	st := &countingStore{Store: inner}

	logger := slogx.New(slogx.Config{Service: "forum-test", Level: "error", Format: "text"})
	sessions := &sessionx.Manager{Secret: []byte("test-session-secret"), TTL: time.Hour}

	router := NewRouter(sessions, "test", st, logger)
	router.Hub = live.NewHub(logger)
	router.UserService = &service.UserService{Store: st}
	router.PostService = &service.PostService{Store: st}
	router.ConcentrateService = &service.ConcentrateService{Store: st}
	router.ApplyRoutes()

	t.Run("no session cookie means no user lookup", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/threads", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int32(0), st.userLookups.Load())
	})

	t.Run("a logged-in cookie resolves the user exactly once", func(t *testing.T) {
		user, err := (&service.UserService{Store: st}).Register(context.Background(), "alice", "password1")
		require.NoError(t, err)
		st.userLookups.Store(0)

		sess := &sessionx.Session{}
		sess.SetUserID(user.ID)
		rec := httptest.NewRecorder()
		require.NoError(t, sessions.Save(rec, sess))
		cookie := rec.Result().Cookies()[0]

		req := httptest.NewRequest(http.MethodGet, "/v1/threads", nil)
		req.AddCookie(cookie)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int32(1), st.userLookups.Load())
	})
}
