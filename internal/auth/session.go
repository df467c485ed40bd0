package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
	"github.com/nilepm/pm-suite/internal/utils"
)

// SessionStore is the slice of the session repository the manager needs.
type SessionStore interface {
	Create(ctx context.Context, token string, userID uint64, expiresAt time.Time) error
	Lookup(ctx context.Context, token string) (model.Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionManager owns the session lifecycle.  It is constructed once at
// process start with explicit configuration and passed to the access guard;
// there is no ambient global registration.
type SessionManager struct {
	sessions   SessionStore
	users      UserStore
	ttl        time.Duration
	cookieName string
	secure     bool
}

func NewSessionManager(sessions SessionStore, users UserStore, ttl time.Duration, cookieName string, secure bool) *SessionManager {
	return &SessionManager{
		sessions:   sessions,
		users:      users,
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Issue serializes a principal into a new session.  Only the user id is
// persisted with the token; role and permission edits therefore take effect
// on the very next request.
func (m *SessionManager) Issue(ctx context.Context, p Principal) (string, error) {
	token, err := utils.NewSessionToken()
	if err != nil {
		return "", err
	}
	expires := time.Now().UTC().Add(m.ttl)
	if err := m.sessions.Create(ctx, token, p.ID, expires); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve deserializes a token back into a principal, re-reading the user
// record on every call.  A token whose session or user no longer exists
// yields ErrSessionInvalid; storage failures propagate unchanged.
func (m *SessionManager) Resolve(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrSessionInvalid
	}
	s, err := m.sessions.Lookup(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return Principal{}, ErrSessionInvalid
	}
	if err != nil {
		return Principal{}, err
	}
	u, err := m.users.GetByID(ctx, s.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		// The user was deleted after the session was issued.  Treated as
		// a failed-auth outcome, forcing re-authentication.
		return Principal{}, ErrSessionInvalid
	}
	if err != nil {
		return Principal{}, err
	}
	return Principal{ID: u.ID, Username: u.Username, RoleID: u.RoleID}, nil
}

// Destroy ends a session.  Failures are propagated, never swallowed.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	return m.sessions.Delete(ctx, token)
}

// TTL reports the fixed session lifetime.  There is no sliding renewal.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// CookieName reports the configured session cookie name.
func (m *SessionManager) CookieName() string { return m.cookieName }

// Cookie builds the session cookie for a freshly issued token.  The value
// is opaque, the cookie is HttpOnly and SameSite strict, and its lifetime
// matches the session's absolute expiry.
func (m *SessionManager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie builds an expired cookie used on logout.
func (m *SessionManager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
