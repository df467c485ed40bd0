package repository

import (
	"context"
	"database/sql"
	"strings"
)

// MemberRepo encapsulates queries against the `project_members` join table.
// Rows are identified by the (project_id, user_id) pair; there is no
// partial update for memberships, only add and remove.
type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{db: db} }

// Add assigns a user to a project.  Re-adding an existing pair surfaces as
// ErrMemberExists.
func (r *MemberRepo) Add(ctx context.Context, projectID, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO project_members (project_id, user_id) VALUES (?,?)", projectID, userID)
	if err != nil && strings.Contains(err.Error(), "1062") {
		return ErrMemberExists
	}
	return err
}

// ListByProject returns the user ids assigned to a project.
func (r *MemberRepo) ListByProject(ctx context.Context, projectID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id FROM project_members WHERE project_id = ? ORDER BY user_id", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove detaches a user from a project.  Removing a non-existent pair
// returns ErrNotFound.
func (r *MemberRepo) Remove(ctx context.Context, projectID, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM project_members WHERE project_id = ? AND user_id = ?", projectID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
