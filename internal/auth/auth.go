// Package auth implements credential verification and the server-side
// session lifecycle.  It deliberately knows nothing about HTTP routing;
// the web tier's middleware wires it into requests.
package auth

import (
	"context"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
	"github.com/nilepm/pm-suite/internal/utils"
)

// Principal is the authenticated identity attached to a request after a
// session resolves.  It carries only what authorization branching needs.
type Principal struct {
	ID       uint64
	Username string
	RoleID   model.RoleID
}

var (
	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.  Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrSessionInvalid marks a token that does not resolve to a live
	// principal.  It is an outcome, not a server failure.
	ErrSessionInvalid = errors.New("session invalid")
)

// UserStore is the slice of the user repository the auth package needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// dummyHash is a throwaway bcrypt hash compared against when the username
// does not exist, so the unknown-user path costs roughly the same as a
// real verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticator verifies a username/password pair against the credential
// store.  It is read-only and safe for concurrent use.
type Authenticator struct {
	users UserStore
}

func NewAuthenticator(users UserStore) *Authenticator {
	return &Authenticator{users: users}
}

// Authenticate looks up the user by exact username and verifies the
// password against the stored bcrypt hash.  Unknown users and wrong
// passwords yield the same ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (Principal, error) {
	if username == "" || password == "" {
		return Principal{}, ErrMissingCredentials
	}
	u, err := a.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		utils.VerifyPassword(dummyHash, password)
		return Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return Principal{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{ID: u.ID, Username: u.Username, RoleID: u.RoleID}, nil
}
