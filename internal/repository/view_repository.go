package repository

import (
	"context"
	"database/sql"
)

// ViewRepo reads the precomputed reporting views.  The views are owned by
// the database schema; their column sets are treated as opaque here and
// passed through to the client as-is.
type ViewRepo struct {
	db *sql.DB
}

func NewViewRepo(db *sql.DB) *ViewRepo { return &ViewRepo{db: db} }

func (r *ViewRepo) ProjectSummary(ctx context.Context) ([]map[string]any, error) {
	return r.queryView(ctx, "SELECT * FROM project_summary")
}

func (r *ViewRepo) UserProjects(ctx context.Context) ([]map[string]any, error) {
	return r.queryView(ctx, "SELECT * FROM user_project_view")
}

func (r *ViewRepo) ProjectManagement(ctx context.Context) ([]map[string]any, error) {
	return r.queryView(ctx, "SELECT * FROM project_management_view")
}

func (r *ViewRepo) SubmissionStatus(ctx context.Context) ([]map[string]any, error) {
	return r.queryView(ctx, "SELECT * FROM project_submission_info")
}

// queryView scans rows of unknown shape into maps keyed by column name.
// []byte cells are converted to string so JSON encoding does not base64
// them.
func (r *ViewRepo) queryView(ctx context.Context, q string) ([]map[string]any, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(map[string]any, len(cols))
		for i, col := range cols {
			v := cells[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec[col] = v
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
