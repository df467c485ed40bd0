package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
)

// charterUpdateColumns is the fixed whitelist for partial charter edits.
// It matches the create field set exactly; the original system's create
// path silently dropped fields the edit path accepted, which is not
// replicated here.
var charterUpdateColumns = []string{
	"start_date", "end_date", "project_id", "description", "kpis",
	"risks", "mitigation_strategies", "target_participants", "submitter_name",
}

const charterSelect = `SELECT id, project_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	description, kpis, risks, mitigation_strategies, target_participants, submitter_name
	FROM charter`

// CharterRepo encapsulates queries against the `charter` table.
type CharterRepo struct {
	db *sql.DB
}

func NewCharterRepo(db *sql.DB) *CharterRepo { return &CharterRepo{db: db} }

func scanCharter(scan func(dest ...any) error) (model.Charter, error) {
	var c model.Charter
	var start, end sql.NullString
	err := scan(&c.ID, &c.ProjectID, &start, &end, &c.Description, &c.KPIs,
		&c.Risks, &c.MitigationStrategies, &c.TargetParticipants, &c.SubmitterName)
	if err != nil {
		return model.Charter{}, err
	}
	c.StartDate, c.EndDate = start.String, end.String
	return c, nil
}

// Create inserts a charter and returns the stored row.  Empty date strings
// are written as NULL, never as zero dates.
func (r *CharterRepo) Create(ctx context.Context, c model.Charter) (model.Charter, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO charter (start_date, end_date, project_id, description, kpis,
		 risks, mitigation_strategies, target_participants, submitter_name)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		nullIfEmpty(c.StartDate), nullIfEmpty(c.EndDate), c.ProjectID, c.Description,
		c.KPIs, c.Risks, c.MitigationStrategies, c.TargetParticipants, c.SubmitterName)
	if err != nil {
		return model.Charter{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Charter{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *CharterRepo) GetByID(ctx context.Context, id uint64) (model.Charter, error) {
	row := r.db.QueryRowContext(ctx, charterSelect+" WHERE id = ? LIMIT 1", id)
	c, err := scanCharter(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Charter{}, ErrNotFound
	}
	return c, err
}

func (r *CharterRepo) List(ctx context.Context) ([]model.Charter, error) {
	rows, err := r.db.QueryContext(ctx, charterSelect+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Charter
	for rows.Next() {
		c, err := scanCharter(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByProject returns the charters attached to a project.  This is the
// explicit "by project" operation; editing is always scoped by the
// charter's own id.
func (r *CharterRepo) ListByProject(ctx context.Context, projectID uint64) ([]model.Charter, error) {
	rows, err := r.db.QueryContext(ctx, charterSelect+" WHERE project_id = ? ORDER BY id", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Charter
	for rows.Next() {
		c, err := scanCharter(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial edit scoped by the charter's primary id and
// returns the updated row.
func (r *CharterRepo) Update(ctx context.Context, id uint64, fields Fields) (model.Charter, error) {
	q, args, err := BuildUpdate("charter", "id", id, fields, charterUpdateColumns)
	if err != nil {
		return model.Charter{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.Charter{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *CharterRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM charter WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
