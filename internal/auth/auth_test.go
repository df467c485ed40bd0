package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
	"github.com/nilepm/pm-suite/internal/utils"
)

type stubUserStore struct {
	users map[uint64]model.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[uint64]model.User)}
}

func (s *stubUserStore) add(t *testing.T, id uint64, username, password string, role model.RoleID) model.User {
	t.Helper()
	hash, err := utils.HashPassword(password, 10)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := model.User{ID: id, Username: username, PasswordHash: hash, RoleID: role}
	s.users[id] = u
	return u
}

func (s *stubUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *stubUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

type stubSessionStore struct {
	sessions map[string]model.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]model.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, token string, userID uint64, expiresAt time.Time) error {
	s.sessions[token] = model.Session{Token: token, UserID: userID, CreatedAt: time.Now().UTC(), ExpiresAt: expiresAt}
	return nil
}

func (s *stubSessionStore) Lookup(_ context.Context, token string) (model.Session, error) {
	sess, ok := s.sessions[token]
	if !ok || time.Now().UTC().After(sess.ExpiresAt) {
		return model.Session{}, repository.ErrNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func TestAuthenticateSuccess(t *testing.T) {
	store := newStubUserStore()
	store.add(t, 1, "amira", "s3cret", model.RoleAdmin)
	a := NewAuthenticator(store)

	p, err := a.Authenticate(context.Background(), "amira", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if p.ID != 1 || p.RoleID != model.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	a := NewAuthenticator(newStubUserStore())
	for _, pair := range [][2]string{{"", "pw"}, {"amira", ""}, {"", ""}} {
		if _, err := a.Authenticate(context.Background(), pair[0], pair[1]); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("Authenticate(%q, %q): expected ErrMissingCredentials, got %v", pair[0], pair[1], err)
		}
	}
}

func TestAuthenticateUnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	store := newStubUserStore()
	store.add(t, 1, "amira", "s3cret", model.RoleManager)
	a := NewAuthenticator(store)

	_, errUnknown := a.Authenticate(context.Background(), "nobody", "whatever")
	_, errWrongPw := a.Authenticate(context.Background(), "amira", "wrong")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthenticateUsernameIsCaseSensitive(t *testing.T) {
	store := newStubUserStore()
	store.add(t, 1, "Amira", "s3cret", model.RoleMember)
	a := NewAuthenticator(store)

	if _, err := a.Authenticate(context.Background(), "amira", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected case-mismatched username to fail, got %v", err)
	}
}

func newTestManager(users *stubUserStore, sessions *stubSessionStore) *SessionManager {
	return NewSessionManager(sessions, users, 24*time.Hour, "pm_session", false)
}

func TestSessionRoundTrip(t *testing.T) {
	users := newStubUserStore()
	users.add(t, 7, "layla", "pw123456", model.RoleManager)
	sessions := newStubSessionStore()
	m := newTestManager(users, sessions)

	token, err := m.Issue(context.Background(), Principal{ID: 7, Username: "layla", RoleID: model.RoleManager})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	p, err := m.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if p.ID != 7 || p.Username != "layla" {
		t.Fatalf("unexpected principal after round trip: %+v", p)
	}
}

func TestResolveReflectsRoleEditImmediately(t *testing.T) {
	users := newStubUserStore()
	users.add(t, 7, "layla", "pw123456", model.RoleManager)
	sessions := newStubSessionStore()
	m := newTestManager(users, sessions)

	token, err := m.Issue(context.Background(), Principal{ID: 7, RoleID: model.RoleManager})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Only the id is serialized, so a role change lands on the next resolve.
	u := users.users[7]
	u.RoleID = model.RoleAdmin
	users.users[7] = u

	p, err := m.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if p.RoleID != model.RoleAdmin {
		t.Fatalf("expected updated role, got %v", p.RoleID)
	}
}

func TestResolveAfterUserDeleted(t *testing.T) {
	users := newStubUserStore()
	users.add(t, 7, "layla", "pw123456", model.RoleMember)
	sessions := newStubSessionStore()
	m := newTestManager(users, sessions)

	token, err := m.Issue(context.Background(), Principal{ID: 7})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	delete(users.users, 7)

	if _, err := m.Resolve(context.Background(), token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid after user deletion, got %v", err)
	}
}

func TestResolveAfterDestroy(t *testing.T) {
	users := newStubUserStore()
	users.add(t, 7, "layla", "pw123456", model.RoleMember)
	sessions := newStubSessionStore()
	m := newTestManager(users, sessions)

	token, err := m.Issue(context.Background(), Principal{ID: 7})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if err := m.Destroy(context.Background(), token); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if _, err := m.Resolve(context.Background(), token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid after destroy, got %v", err)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	m := newTestManager(newStubUserStore(), newStubSessionStore())
	if _, err := m.Resolve(context.Background(), ""); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid for empty token, got %v", err)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	m := newTestManager(newStubUserStore(), newStubSessionStore())
	c := m.Cookie("tok")
	if !c.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("session cookie must be SameSite=Strict, got %v", c.SameSite)
	}
	if c.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("cookie lifetime must match the fixed session TTL, got %d", c.MaxAge)
	}
	if c.Value != "tok" || c.Name != "pm_session" {
		t.Fatalf("unexpected cookie identity: %+v", c)
	}
}
