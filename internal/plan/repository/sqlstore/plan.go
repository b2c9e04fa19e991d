package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"action-plan-assistant/internal/model"
	repo "action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/datemath"
)

// CreatePlan inserts the plan and all of its steps in one transaction.
func (r *implRepository) CreatePlan(ctx context.Context, opt repo.CreatePlanOptions) (model.Plan, error) {
	p := model.Plan{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Idea:      opt.Idea,
		Title:     opt.Title,
		StartDate: opt.StartDate,
		MaxDays:   opt.MaxDays,
		CreatedAt: opt.CreatedAt.UTC(),
		UpdatedAt: opt.CreatedAt.UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreatePlan"), err)
		return model.Plan{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	planQuery := r.rebind(`INSERT INTO plans (` + planColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, planQuery,
		p.ID, p.UserID, p.Idea, p.Title, datemath.FormatDate(p.StartDate), p.MaxDays,
		formatTimestamp(p.CreatedAt), formatTimestamp(p.UpdatedAt),
	); err != nil {
		r.l.Errorf(ctx, "%s plan: %v", r.dsn("CreatePlan"), err)
		return model.Plan{}, repo.ErrFailedToInsert
	}

	stepQuery := r.rebind(`INSERT INTO plan_steps (` + stepColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	p.Steps = make([]model.Step, len(opt.Steps))
	for i, s := range opt.Steps {
		s.PlanID = p.ID
		if _, err := tx.ExecContext(ctx, stepQuery,
			s.PlanID, s.Position, s.Text, s.Difficulty, datemath.FormatDate(s.DueDate),
			s.Completed, nullableTimestamp(s.CompletedAt), s.Note,
		); err != nil {
			r.l.Errorf(ctx, "%s step %d: %v", r.dsn("CreatePlan"), s.Position, err)
			return model.Plan{}, repo.ErrFailedToInsert
		}
		p.Steps[i] = s
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreatePlan"), err)
		return model.Plan{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetPlan retrieves one plan with its steps.
// Returns zero-value Plan (ID == "") when not found.
func (r *implRepository) GetPlan(ctx context.Context, opt repo.GetPlanOptions) (model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	args := []any{opt.ID}
	if opt.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, opt.UserID)
	}

	p, err := r.scanPlan(r.db.QueryRowContext(ctx, r.rebind(query+` LIMIT 1`), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Plan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPlan"), err)
		return model.Plan{}, repo.ErrFailedToGet
	}

	plans := []model.Plan{p}
	if err := r.attachSteps(ctx, plans); err != nil {
		r.l.Errorf(ctx, "%s steps: %v", r.dsn("GetPlan"), err)
		return model.Plan{}, repo.ErrFailedToGet
	}
	return plans[0], nil
}

// ListPlans returns a page of the user's plans, newest first, and the total count.
func (r *implRepository) ListPlans(ctx context.Context, opt repo.ListPlansOptions) ([]model.Plan, int, error) {
	var total int
	countQuery := r.rebind(`SELECT COUNT(*) FROM plans WHERE user_id = ?`)
	if err := r.db.QueryRowContext(ctx, countQuery, opt.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListPlans"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := `SELECT ` + planColumns + ` FROM plans WHERE user_id = ? ORDER BY created_at DESC, id`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Offset)
	}

	plans, err := r.queryPlans(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlans"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return plans, total, nil
}

// ListActivePlans returns all plans that still have at least one pending step.
func (r *implRepository) ListActivePlans(ctx context.Context) ([]model.Plan, error) {
	const query = `SELECT ` + planColumns + ` FROM plans
		WHERE EXISTS (SELECT 1 FROM plan_steps s WHERE s.plan_id = plans.id AND s.completed = ?)
		ORDER BY created_at, id`

	plans, err := r.queryPlans(ctx, query, false)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActivePlans"), err)
		return nil, repo.ErrFailedToList
	}
	return plans, nil
}

// UpdateStep overwrites the mutable fields of a step and touches the plan.
// Returns zero-value Step (PlanID == "") when the step does not exist.
func (r *implRepository) UpdateStep(ctx context.Context, opt repo.UpdateStepOptions) (model.Step, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateStep"), err)
		return model.Step{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		r.rebind(`UPDATE plan_steps SET completed = ?, completed_at = ?, note = ? WHERE plan_id = ? AND position = ?`),
		opt.Completed, nullableTimestamp(opt.CompletedAt), opt.Note, opt.PlanID, opt.Position,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStep"), err)
		return model.Step{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Step{}, nil
	}

	if _, err := tx.ExecContext(ctx, r.rebind(`UPDATE plans SET updated_at = ? WHERE id = ?`),
		formatTimestamp(opt.UpdatedAt), opt.PlanID,
	); err != nil {
		r.l.Errorf(ctx, "%s touch plan: %v", r.dsn("UpdateStep"), err)
		return model.Step{}, repo.ErrFailedToUpdate
	}

	step, err := r.scanStep(tx.QueryRowContext(ctx,
		r.rebind(`SELECT `+stepColumns+` FROM plan_steps WHERE plan_id = ? AND position = ?`),
		opt.PlanID, opt.Position,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("UpdateStep"), err)
		return model.Step{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateStep"), err)
		return model.Step{}, repo.ErrFailedToUpdate
	}
	return step, nil
}

// DeletePlan removes a plan and its steps.
func (r *implRepository) DeletePlan(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeletePlan"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM plan_steps WHERE plan_id = ?`,
		`DELETE FROM plans WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, r.rebind(q), id); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePlan"), err)
			return repo.ErrFailedToDelete
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeletePlan"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) queryPlans(ctx context.Context, query string, args ...any) ([]model.Plan, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []model.Plan{}
	for rows.Next() {
		p, err := r.scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachSteps(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// attachSteps loads the steps of all plans with a single query.
func (r *implRepository) attachSteps(ctx context.Context, plans []model.Plan) error {
	if len(plans) == 0 {
		return nil
	}

	ids := make([]any, len(plans))
	index := make(map[string]int, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
		index[p.ID] = i
	}

	query := fmt.Sprintf(`SELECT %s FROM plan_steps WHERE plan_id IN (%s) ORDER BY plan_id, position`,
		stepColumns, placeholders(len(ids)))
	rows, err := r.db.QueryContext(ctx, r.rebind(query), ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		s, err := r.scanStep(rows)
		if err != nil {
			return err
		}
		i := index[s.PlanID]
		plans[i].Steps = append(plans[i].Steps, s)
	}
	return rows.Err()
}
