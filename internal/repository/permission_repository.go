package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
)

var permissionUpdateColumns = []string{"can_create", "can_delete", "can_edit"}

// PermissionRepo encapsulates queries against the `permissions` table.
type PermissionRepo struct {
	db *sql.DB
}

func NewPermissionRepo(db *sql.DB) *PermissionRepo { return &PermissionRepo{db: db} }

// Create inserts a permission set and returns the stored row.
func (r *PermissionRepo) Create(ctx context.Context, canCreate, canDelete, canEdit bool) (model.Permission, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO permissions (can_create, can_delete, can_edit) VALUES (?,?,?)",
		canCreate, canDelete, canEdit)
	if err != nil {
		return model.Permission{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Permission{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *PermissionRepo) GetByID(ctx context.Context, id uint64) (model.Permission, error) {
	var p model.Permission
	err := r.db.QueryRowContext(ctx,
		"SELECT id, can_create, can_delete, can_edit FROM permissions WHERE id = ? LIMIT 1",
		id).Scan(&p.ID, &p.CanCreate, &p.CanDelete, &p.CanEdit)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Permission{}, ErrNotFound
	}
	return p, err
}

func (r *PermissionRepo) List(ctx context.Context) ([]model.Permission, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, can_create, can_delete, can_edit FROM permissions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Permission
	for rows.Next() {
		var p model.Permission
		if err := rows.Scan(&p.ID, &p.CanCreate, &p.CanDelete, &p.CanEdit); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial edit and returns the updated row.
func (r *PermissionRepo) Update(ctx context.Context, id uint64, fields Fields) (model.Permission, error) {
	q, args, err := BuildUpdate("permissions", "id", id, fields, permissionUpdateColumns)
	if err != nil {
		return model.Permission{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.Permission{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PermissionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM permissions WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
