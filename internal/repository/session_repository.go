package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nilepm/pm-suite/internal/model"
)

// SessionRepo persists server-side sessions keyed by the opaque cookie
// token.  Only the user id is stored with the token; the user row itself is
// re-read on every request by the session manager.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

// Create inserts a session row with a fixed absolute expiry.
func (r *SessionRepo) Create(ctx context.Context, token string, userID uint64, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, expires_at) VALUES (?,?,?)",
		token, userID, expiresAt)
	return err
}

// Lookup resolves a token to its session if the session has not expired.
// Unknown and expired tokens both return ErrNotFound; the distinction is
// invisible to callers on purpose.
func (r *SessionRepo) Lookup(ctx context.Context, token string) (model.Session, error) {
	var s model.Session
	err := r.db.QueryRowContext(ctx,
		"SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ? LIMIT 1",
		token).Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, ErrNotFound
	}
	if err != nil {
		return model.Session{}, err
	}
	if time.Now().UTC().After(s.ExpiresAt) {
		return model.Session{}, ErrNotFound
	}
	return s, nil
}

// Delete destroys a session.  Deleting an already-gone token is not an
// error; logout must be idempotent.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}

// PurgeExpired removes rows whose expiry has passed and returns how many
// were dropped.  Expired sessions are already unusable via Lookup; this is
// housekeeping only.
func (r *SessionRepo) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
