package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
)

var activityFormUpdateColumns = []string{
	"start_date", "end_date", "project_id", "description", "kpis",
	"risks", "mitigation_strategies", "target_participants", "submitter_name",
}

var activityClosureUpdateColumns = []string{
	"project_id", "start_date", "end_date", "description", "kpis",
	"risks", "mitigation_strategies", "total_male_participants",
	"total_female_participants", "submitter_name",
}

const activityFormSelect = `SELECT id, project_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	description, kpis, risks, mitigation_strategies, target_participants, submitter_name
	FROM activity_form`

const activityClosureSelect = `SELECT id, project_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	description, kpis, risks, mitigation_strategies,
	total_male_participants, total_female_participants, submitter_name
	FROM activity_closure`

// ActivityRepo covers the `activity_form` and `activity_closure` tables.
// The two entities travel together: a closure is filed against the same
// project a form was filed for once the activity finishes.
type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{db: db} }

func scanActivityForm(scan func(dest ...any) error) (model.ActivityForm, error) {
	var f model.ActivityForm
	var start, end sql.NullString
	err := scan(&f.ID, &f.ProjectID, &start, &end, &f.Description, &f.KPIs,
		&f.Risks, &f.MitigationStrategies, &f.TargetParticipants, &f.SubmitterName)
	if err != nil {
		return model.ActivityForm{}, err
	}
	f.StartDate, f.EndDate = start.String, end.String
	return f, nil
}

func scanActivityClosure(scan func(dest ...any) error) (model.ActivityClosure, error) {
	var c model.ActivityClosure
	var start, end sql.NullString
	err := scan(&c.ID, &c.ProjectID, &start, &end, &c.Description, &c.KPIs,
		&c.Risks, &c.MitigationStrategies, &c.TotalMaleParticipants,
		&c.TotalFemaleParticipants, &c.SubmitterName)
	if err != nil {
		return model.ActivityClosure{}, err
	}
	c.StartDate, c.EndDate = start.String, end.String
	return c, nil
}

// ----- activity_form -----

func (r *ActivityRepo) CreateForm(ctx context.Context, f model.ActivityForm) (model.ActivityForm, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_form (start_date, end_date, project_id, description, kpis,
		 risks, target_participants, mitigation_strategies, submitter_name)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		nullIfEmpty(f.StartDate), nullIfEmpty(f.EndDate), f.ProjectID, f.Description,
		f.KPIs, f.Risks, f.TargetParticipants, f.MitigationStrategies, f.SubmitterName)
	if err != nil {
		return model.ActivityForm{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ActivityForm{}, err
	}
	return r.GetFormByID(ctx, uint64(id))
}

func (r *ActivityRepo) GetFormByID(ctx context.Context, id uint64) (model.ActivityForm, error) {
	row := r.db.QueryRowContext(ctx, activityFormSelect+" WHERE id = ? LIMIT 1", id)
	f, err := scanActivityForm(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ActivityForm{}, ErrNotFound
	}
	return f, err
}

func (r *ActivityRepo) ListForms(ctx context.Context) ([]model.ActivityForm, error) {
	rows, err := r.db.QueryContext(ctx, activityFormSelect+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActivityForm
	for rows.Next() {
		f, err := scanActivityForm(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ActivityRepo) UpdateForm(ctx context.Context, id uint64, fields Fields) (model.ActivityForm, error) {
	q, args, err := BuildUpdate("activity_form", "id", id, fields, activityFormUpdateColumns)
	if err != nil {
		return model.ActivityForm{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.ActivityForm{}, err
	}
	return r.GetFormByID(ctx, id)
}

func (r *ActivityRepo) DeleteForm(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM activity_form WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- activity_closure -----

func (r *ActivityRepo) CreateClosure(ctx context.Context, c model.ActivityClosure) (model.ActivityClosure, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_closure (start_date, end_date, project_id, description, kpis,
		 risks, mitigation_strategies, total_male_participants, total_female_participants, submitter_name)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		nullIfEmpty(c.StartDate), nullIfEmpty(c.EndDate), c.ProjectID, c.Description,
		c.KPIs, c.Risks, c.MitigationStrategies, c.TotalMaleParticipants,
		c.TotalFemaleParticipants, c.SubmitterName)
	if err != nil {
		return model.ActivityClosure{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ActivityClosure{}, err
	}
	return r.GetClosureByID(ctx, uint64(id))
}

func (r *ActivityRepo) GetClosureByID(ctx context.Context, id uint64) (model.ActivityClosure, error) {
	row := r.db.QueryRowContext(ctx, activityClosureSelect+" WHERE id = ? LIMIT 1", id)
	c, err := scanActivityClosure(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ActivityClosure{}, ErrNotFound
	}
	return c, err
}

func (r *ActivityRepo) ListClosures(ctx context.Context) ([]model.ActivityClosure, error) {
	rows, err := r.db.QueryContext(ctx, activityClosureSelect+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActivityClosure
	for rows.Next() {
		c, err := scanActivityClosure(rows.Scan)
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

func (r *ActivityRepo) UpdateClosure(ctx context.Context, id uint64, fields Fields) (model.ActivityClosure, error) {
	q, args, err := BuildUpdate("activity_closure", "id", id, fields, activityClosureUpdateColumns)
	if err != nil {
		return model.ActivityClosure{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.ActivityClosure{}, err
	}
	return r.GetClosureByID(ctx, id)
}

func (r *ActivityRepo) DeleteClosure(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM activity_closure WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
