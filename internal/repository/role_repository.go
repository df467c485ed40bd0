package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
)

var roleUpdateColumns = []string{"role_name"}

// RoleRepo encapsulates queries against the `roles` table.
type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{db: db} }

func (r *RoleRepo) Create(ctx context.Context, roleName string) (model.Role, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO roles (role_name) VALUES (?)", roleName)
	if err != nil {
		return model.Role{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Role{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *RoleRepo) GetByID(ctx context.Context, id uint64) (model.Role, error) {
	var role model.Role
	err := r.db.QueryRowContext(ctx,
		"SELECT id, role_name FROM roles WHERE id = ? LIMIT 1", id).Scan(&role.ID, &role.RoleName)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Role{}, ErrNotFound
	}
	return role, err
}

func (r *RoleRepo) List(ctx context.Context) ([]model.Role, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, role_name FROM roles ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Role
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.RoleName); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoleRepo) Update(ctx context.Context, id uint64, fields Fields) (model.Role, error) {
	q, args, err := BuildUpdate("roles", "id", id, fields, roleUpdateColumns)
	if err != nil {
		return model.Role{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.Role{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *RoleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM roles WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
