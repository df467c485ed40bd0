package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/utils"
)

// userUpdateColumns is the fixed whitelist for partial user edits.  The
// client-facing field is "password"; Update hashes it and rewrites it to
// password_hash, and drops any password_hash key arriving from outside.
var userUpdateColumns = []string{"username", "password_hash", "permissions_id", "role_id"}

const userColumns = "id, username, password_hash, permissions_id, role_id, created_at, updated_at"

// UserRepo encapsulates all database queries against the `users` table plus
// the membership detach that must accompany a user delete.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PermissionsID, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// Create hashes the password and inserts a new user, returning the stored
// row.  A duplicate username surfaces as ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, username, password string, permissionsID uint64, roleID model.RoleID, cost int) (model.User, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, permissions_id, role_id) VALUES (?,?,?,?)",
		username, hash, permissionsID, roleID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return model.User{}, ErrUsernameExists
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByUsername fetches a user by exact username.  BINARY forces a
// case-sensitive match regardless of the column collation.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE BINARY username = ? LIMIT 1", username))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id))
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PermissionsID, &u.RoleID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial edit to a user.  A supplied "password" field is
// hashed here and rewritten to password_hash so the plaintext never reaches
// statement construction.  password_hash itself is a derived column: a
// client-supplied value is discarded so nobody can plant a hash verbatim.
// Returns the updated row.
func (r *UserRepo) Update(ctx context.Context, id uint64, fields Fields, cost int) (model.User, error) {
	delete(fields, "password_hash")
	if pw, ok := fields["password"].(string); ok && pw != "" {
		hash, err := utils.HashPassword(pw, cost)
		if err != nil {
			return model.User{}, err
		}
		fields["password_hash"] = hash
	}
	q, args, err := BuildUpdate("users", "id", id, fields, userUpdateColumns)
	if err != nil {
		return model.User{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user together with its project membership rows and any
// live sessions, in one transaction, so a half-deleted user can never be
// observed.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM project_members WHERE user_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM sessions WHERE user_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	res, err = tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	err = tx.Commit()
	return err
}
