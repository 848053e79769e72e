// Package sessionx implements the signed, HTTP-only session cookie. The
// payload lives client-side; the server trusts it only when the signature
// verifies. A tampered or expired cookie degrades to an anonymous session,
// never to an error.
package sessionx

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookieName is the single well-known session cookie key.
const DefaultCookieName = "forum_session"

var ErrNoSecret = errors.New("sessionx: signing secret not configured")

// Session is the mutable, request-scoped bag decoded from the cookie. The
// only server-trusted field today is the user ID.
type Session struct {
	userID string
	dirty  bool
}

// UserID returns the logged-in user's ID, or "" when anonymous.
func (s *Session) UserID() string { return s.userID }

// SetUserID marks the session as logged in.
func (s *Session) SetUserID(id string) {
	s.userID = id
	s.dirty = true
}

// ClearUserID logs the session out. Also used to drop a dangling reference
// to a deleted account.
func (s *Session) ClearUserID() {
	if s.userID == "" {
		return
	}
	s.userID = ""
	s.dirty = true
}

// Dirty reports whether the session was mutated and needs re-issuing.
func (s *Session) Dirty() bool { return s.dirty }

type sessionClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"uid,omitempty"`
}

// Manager signs and verifies session cookies.
type Manager struct {
	Name   string        // cookie name, DefaultCookieName if empty
	Secret []byte        // HMAC-SHA256 signing key
	TTL    time.Duration // cookie and token lifetime
	Secure bool          // set the Secure cookie attribute
}

func (m *Manager) cookieName() string {
	if m.Name == "" {
		return DefaultCookieName
	}
	return m.Name
}

// Load decodes the session from the request cookie. Absent cookie, bad
// signature, wrong algorithm or expired token all yield a fresh anonymous
// session; Load never fails the request.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookieName())
	if err != nil || cookie.Value == "" {
		return &Session{}
	}

	claims := &sessionClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims,
		func(t *jwt.Token) (any, error) { return m.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return &Session{}
	}

	return &Session{userID: claims.UserID}
}

// Save signs the session and sets the cookie on the response. Must be called
// before the handler writes the response body.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if len(m.Secret) == 0 {
		return ErrNoSecret
	}

	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
		},
		UserID: s.userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName(),
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.dirty = false
	return nil
}
