package sessionx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wizardchad/forum/pkg/sessionx"
)

func newManager() *sessionx.Manager {
	return &sessionx.Manager{
		Secret: []byte("test-secret-do-not-share-or-die"),
		TTL:    24 * time.Hour,
	}
}

// roundtrip saves sess and returns a request carrying the resulting cookie.
func roundtrip(t *testing.T, m *sessionx.Manager, sess *sessionx.Session) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	return req
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	m := newManager()

	t.Run("round-trips the user ID", func(t *testing.T) {
		sess := &sessionx.Session{}
		sess.SetUserID("01HZX5V9G20000000000000000")

		loaded := m.Load(roundtrip(t, m, sess))
		require.Equal(t, "01HZX5V9G20000000000000000", loaded.UserID())
		require.False(t, loaded.Dirty())
	})

	t.Run("cookie is HTTP-only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, m.Save(rec, &sessionx.Session{}))

		cookie := rec.Result().Cookies()[0]
		require.True(t, cookie.HttpOnly)
		require.Equal(t, sessionx.DefaultCookieName, cookie.Name)
	})

	t.Run("missing cookie yields anonymous session", func(t *testing.T) {
		sess := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Empty(t, sess.UserID())
	})

	t.Run("refuses to sign without a secret", func(t *testing.T) {
		bad := &sessionx.Manager{TTL: time.Hour}
		err := bad.Save(httptest.NewRecorder(), &sessionx.Session{})
		require.ErrorIs(t, err, sessionx.ErrNoSecret)
	})
}

func TestLoadRejectsTampering(t *testing.T) {
	t.Parallel()

	m := newManager()

	sess := &sessionx.Session{}
	sess.SetUserID("01HZX5V9G20000000000000000")
	req := roundtrip(t, m, sess)

	t.Run("tampered payload", func(t *testing.T) {
		cookie, err := req.Cookie(sessionx.DefaultCookieName)
		require.NoError(t, err)

		parts := strings.Split(cookie.Value, ".")
		require.Len(t, parts, 3)
		parts[1] = "eyJ1aWQiOiJzb21lb25lLWVsc2UifQ"

		forged := httptest.NewRequest(http.MethodGet, "/", nil)
		forged.AddCookie(&http.Cookie{
			Name:  sessionx.DefaultCookieName,
			Value: strings.Join(parts, "."),
		})

		require.Empty(t, m.Load(forged).UserID())
	})

	t.Run("signed with a different secret", func(t *testing.T) {
		other := &sessionx.Manager{Secret: []byte("some-other-secret"), TTL: time.Hour}
		require.Empty(t, other.Load(req).UserID())
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := &sessionx.Manager{Secret: m.Secret, TTL: -time.Minute}
		expired := &sessionx.Session{}
		expired.SetUserID("01HZX5V9G20000000000000000")

		require.Empty(t, m.Load(roundtrip(t, shortLived, expired)).UserID())
	})
}

func TestSessionMutation(t *testing.T) {
	t.Parallel()

	sess := &sessionx.Session{}
	require.False(t, sess.Dirty())

	// Clearing an already-anonymous session is a no-op.
	sess.ClearUserID()
	require.False(t, sess.Dirty())

	sess.SetUserID("abc")
	require.True(t, sess.Dirty())

	m := newManager()
	require.NoError(t, m.Save(httptest.NewRecorder(), sess))
	require.False(t, sess.Dirty())

	sess.ClearUserID()
	require.True(t, sess.Dirty())
	require.Empty(t, sess.UserID())
}
