package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
)

var (
	projectUpdateColumns = []string{"project_name", "status"}
	pendingUpdateColumns = []string{"project_name"}
	activeUpdateColumns  = []string{"project_name"}
)

// ProjectRepo covers the three project tables: projects, pending_projects
// and active_projects, plus the pending-to-active promotion which is the
// only multi-statement operation in the system.
type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{db: db} }

// ----- projects -----

func (r *ProjectRepo) Create(ctx context.Context, name, status string) (model.Project, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (project_name, status) VALUES (?,?)", name, status)
	if err != nil {
		return model.Project{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Project{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uint64) (model.Project, error) {
	var p model.Project
	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_name, status FROM projects WHERE id = ? LIMIT 1",
		id).Scan(&p.ID, &p.ProjectName, &p.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, ErrNotFound
	}
	return p, err
}

func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, project_name, status FROM projects ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.ProjectName, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepo) Update(ctx context.Context, id uint64, fields Fields) (model.Project, error) {
	q, args, err := BuildUpdate("projects", "id", id, fields, projectUpdateColumns)
	if err != nil {
		return model.Project{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.Project{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- pending_projects -----

// CreatePending inserts a pending project.  Status is fixed server side.
func (r *ProjectRepo) CreatePending(ctx context.Context, name, submitter string) (model.PendingProject, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO pending_projects (project_name, status, submitter_name) VALUES (?,?,?)",
		name, "Pending", submitter)
	if err != nil {
		return model.PendingProject{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.PendingProject{}, err
	}
	return r.GetPendingByID(ctx, uint64(id))
}

func (r *ProjectRepo) GetPendingByID(ctx context.Context, id uint64) (model.PendingProject, error) {
	var p model.PendingProject
	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_name, status, submitter_name FROM pending_projects WHERE id = ? LIMIT 1",
		id).Scan(&p.ID, &p.ProjectName, &p.Status, &p.SubmitterName)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PendingProject{}, ErrNotFound
	}
	return p, err
}

func (r *ProjectRepo) ListPending(ctx context.Context) ([]model.PendingProject, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_name, status, submitter_name FROM pending_projects ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PendingProject
	for rows.Next() {
		var p model.PendingProject
		if err := rows.Scan(&p.ID, &p.ProjectName, &p.Status, &p.SubmitterName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepo) UpdatePending(ctx context.Context, id uint64, fields Fields) (model.PendingProject, error) {
	q, args, err := BuildUpdate("pending_projects", "id", id, fields, pendingUpdateColumns)
	if err != nil {
		return model.PendingProject{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.PendingProject{}, err
	}
	return r.GetPendingByID(ctx, id)
}

func (r *ProjectRepo) DeletePending(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM pending_projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- active_projects -----

// CreateActive inserts an active project directly.  Status is fixed server
// side.
func (r *ProjectRepo) CreateActive(ctx context.Context, name, submitter string) (model.ActiveProject, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO active_projects (project_name, status, submitter_name) VALUES (?,?,?)",
		name, "Active", submitter)
	if err != nil {
		return model.ActiveProject{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ActiveProject{}, err
	}
	return r.GetActiveByID(ctx, uint64(id))
}

func (r *ProjectRepo) GetActiveByID(ctx context.Context, id uint64) (model.ActiveProject, error) {
	var p model.ActiveProject
	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_name, status, submitter_name FROM active_projects WHERE id = ? LIMIT 1",
		id).Scan(&p.ID, &p.ProjectName, &p.Status, &p.SubmitterName)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ActiveProject{}, ErrNotFound
	}
	return p, err
}

func (r *ProjectRepo) ListActive(ctx context.Context) ([]model.ActiveProject, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_name, status, submitter_name FROM active_projects ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActiveProject
	for rows.Next() {
		var p model.ActiveProject
		if err := rows.Scan(&p.ID, &p.ProjectName, &p.Status, &p.SubmitterName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepo) UpdateActive(ctx context.Context, id uint64, fields Fields) (model.ActiveProject, error) {
	q, args, err := BuildUpdate("active_projects", "id", id, fields, activeUpdateColumns)
	if err != nil {
		return model.ActiveProject{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.ActiveProject{}, err
	}
	return r.GetActiveByID(ctx, id)
}

func (r *ProjectRepo) DeleteActive(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM active_projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Promote moves a pending project into active_projects and removes the
// pending row inside a single transaction.  Either both writes land or
// neither does; a failed delete rolls back the insert so the project can
// never exist in both tables.
func (r *ProjectRepo) Promote(ctx context.Context, pendingID uint64) (model.ActiveProject, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ActiveProject{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var p model.PendingProject
	err = tx.QueryRowContext(ctx,
		"SELECT id, project_name, submitter_name FROM pending_projects WHERE id = ? LIMIT 1",
		pendingID).Scan(&p.ID, &p.ProjectName, &p.SubmitterName)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
		return model.ActiveProject{}, err
	}
	if err != nil {
		return model.ActiveProject{}, err
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		"INSERT INTO active_projects (project_name, status, submitter_name) VALUES (?,?,?)",
		p.ProjectName, "Active", p.SubmitterName)
	if err != nil {
		return model.ActiveProject{}, err
	}
	var activeID int64
	activeID, err = res.LastInsertId()
	if err != nil {
		return model.ActiveProject{}, err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM pending_projects WHERE id = ?", pendingID); err != nil {
		return model.ActiveProject{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.ActiveProject{}, err
	}
	return model.ActiveProject{
		ID:            uint64(activeID),
		ProjectName:   p.ProjectName,
		Status:        "Active",
		SubmitterName: p.SubmitterName,
	}, nil
}
