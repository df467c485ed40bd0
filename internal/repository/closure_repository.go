package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nilepm/pm-suite/internal/model"
)

var projectClosureUpdateColumns = []string{
	"project_id", "start_date", "end_date", "project_feedback", "lessons_learned",
	"kpis", "risks", "mitigation_strategies", "total_male_participants",
	"total_female_participants", "submitter_name",
}

const projectClosureSelect = `SELECT id, project_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	project_feedback, lessons_learned, kpis, risks, mitigation_strategies,
	total_male_participants, total_female_participants, submitter_name
	FROM project_closure`

// ClosureRepo encapsulates queries against the `project_closure` table.
type ClosureRepo struct {
	db *sql.DB
}

func NewClosureRepo(db *sql.DB) *ClosureRepo { return &ClosureRepo{db: db} }

func scanProjectClosure(scan func(dest ...any) error) (model.ProjectClosure, error) {
	var c model.ProjectClosure
	var start, end sql.NullString
	err := scan(&c.ID, &c.ProjectID, &start, &end, &c.ProjectFeedback, &c.LessonsLearned,
		&c.KPIs, &c.Risks, &c.MitigationStrategies, &c.TotalMaleParticipants,
		&c.TotalFemaleParticipants, &c.SubmitterName)
	if err != nil {
		return model.ProjectClosure{}, err
	}
	c.StartDate, c.EndDate = start.String, end.String
	return c, nil
}

func (r *ClosureRepo) Create(ctx context.Context, c model.ProjectClosure) (model.ProjectClosure, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO project_closure (project_id, start_date, end_date, project_feedback,
		 lessons_learned, kpis, risks, mitigation_strategies,
		 total_male_participants, total_female_participants, submitter_name)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		c.ProjectID, nullIfEmpty(c.StartDate), nullIfEmpty(c.EndDate), c.ProjectFeedback,
		c.LessonsLearned, c.KPIs, c.Risks, c.MitigationStrategies,
		c.TotalMaleParticipants, c.TotalFemaleParticipants, c.SubmitterName)
	if err != nil {
		return model.ProjectClosure{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ProjectClosure{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *ClosureRepo) GetByID(ctx context.Context, id uint64) (model.ProjectClosure, error) {
	row := r.db.QueryRowContext(ctx, projectClosureSelect+" WHERE id = ? LIMIT 1", id)
	c, err := scanProjectClosure(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ProjectClosure{}, ErrNotFound
	}
	return c, err
}

func (r *ClosureRepo) List(ctx context.Context) ([]model.ProjectClosure, error) {
	rows, err := r.db.QueryContext(ctx, projectClosureSelect+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ProjectClosure
	for rows.Next() {
		c, err := scanProjectClosure(rows.Scan)
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

func (r *ClosureRepo) Update(ctx context.Context, id uint64, fields Fields) (model.ProjectClosure, error) {
	q, args, err := BuildUpdate("project_closure", "id", id, fields, projectClosureUpdateColumns)
	if err != nil {
		return model.ProjectClosure{}, err
	}
	if err := ExecUpdate(ctx, r.db, q, args); err != nil {
		return model.ProjectClosure{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ClosureRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM project_closure WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
