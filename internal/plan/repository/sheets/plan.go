package sheets

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"action-plan-assistant/internal/model"
	repo "action-plan-assistant/internal/plan/repository"
)

type planRow struct {
	index int
	plan  model.Plan
}

type stepRow struct {
	index int
	step  model.Step
}

// CreatePlan appends the plan row and its step rows.
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
		Steps:     make([]model.Step, len(opt.Steps)),
	}

	rows := make([][]string, len(opt.Steps))
	for i, s := range opt.Steps {
		s.PlanID = p.ID
		p.Steps[i] = s
		rows[i] = stepToRow(s)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Steps first: a plan row without its steps would show up as an empty plan.
	if len(rows) > 0 {
		if _, err := r.client.Append(ctx, appendRange(stepsSheet), rows); err != nil {
			r.l.Errorf(ctx, "%s steps: %v", r.dsn("CreatePlan"), err)
			return model.Plan{}, repo.ErrFailedToInsert
		}
	}
	if _, err := r.client.Append(ctx, appendRange(plansSheet), [][]string{planToRow(p)}); err != nil {
		r.l.Errorf(ctx, "%s plan: %v", r.dsn("CreatePlan"), err)
		return model.Plan{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetPlan retrieves one plan with its steps.
// Returns zero-value Plan (ID == "") when not found.
func (r *implRepository) GetPlan(ctx context.Context, opt repo.GetPlanOptions) (model.Plan, error) {
	plans, err := r.readPlans(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPlan"), err)
		return model.Plan{}, repo.ErrFailedToGet
	}

	for _, pr := range plans {
		if pr.plan.ID != opt.ID || (opt.UserID != "" && pr.plan.UserID != opt.UserID) {
			continue
		}
		found := []model.Plan{pr.plan}
		if err := r.attachSteps(ctx, found); err != nil {
			r.l.Errorf(ctx, "%s steps: %v", r.dsn("GetPlan"), err)
			return model.Plan{}, repo.ErrFailedToGet
		}
		return found[0], nil
	}
	return model.Plan{}, nil
}

// ListPlans returns a page of the user's plans, newest first, and the total count.
func (r *implRepository) ListPlans(ctx context.Context, opt repo.ListPlansOptions) ([]model.Plan, int, error) {
	rows, err := r.readPlans(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlans"), err)
		return nil, 0, repo.ErrFailedToList
	}

	plans := []model.Plan{}
	for _, pr := range rows {
		if pr.plan.UserID == opt.UserID {
			plans = append(plans, pr.plan)
		}
	}
	sort.SliceStable(plans, func(i, j int) bool {
		if !plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].CreatedAt.After(plans[j].CreatedAt)
		}
		return plans[i].ID < plans[j].ID
	})

	total := len(plans)
	if opt.Limit > 0 {
		start := min(opt.Offset, total)
		end := min(start+opt.Limit, total)
		plans = plans[start:end]
	}

	if err := r.attachSteps(ctx, plans); err != nil {
		r.l.Errorf(ctx, "%s steps: %v", r.dsn("ListPlans"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return plans, total, nil
}

// ListActivePlans returns all plans that still have at least one pending step.
func (r *implRepository) ListActivePlans(ctx context.Context) ([]model.Plan, error) {
	rows, err := r.readPlans(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActivePlans"), err)
		return nil, repo.ErrFailedToList
	}

	plans := make([]model.Plan, len(rows))
	for i, pr := range rows {
		plans[i] = pr.plan
	}
	if err := r.attachSteps(ctx, plans); err != nil {
		r.l.Errorf(ctx, "%s steps: %v", r.dsn("ListActivePlans"), err)
		return nil, repo.ErrFailedToList
	}

	active := []model.Plan{}
	for _, p := range plans {
		if len(p.Steps) > 0 && !p.IsFinished() {
			active = append(active, p)
		}
	}
	return active, nil
}

// UpdateStep rewrites the step row and the plan's updated_at.
// Returns zero-value Step (PlanID == "") when the step does not exist.
func (r *implRepository) UpdateStep(ctx context.Context, opt repo.UpdateStepOptions) (model.Step, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	steps, err := r.readSteps(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStep"), err)
		return model.Step{}, repo.ErrFailedToUpdate
	}

	for _, sr := range steps {
		if sr.step.PlanID != opt.PlanID || sr.step.Position != opt.Position {
			continue
		}

		s := sr.step
		s.Completed = opt.Completed
		s.CompletedAt = opt.CompletedAt
		s.Note = opt.Note
		if err := r.client.Update(ctx, rowRange(stepsSheet, sr.index), [][]string{stepToRow(s)}); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStep"), err)
			return model.Step{}, repo.ErrFailedToUpdate
		}
		if err := r.touchPlan(ctx, opt); err != nil {
			r.l.Errorf(ctx, "%s touch plan: %v", r.dsn("UpdateStep"), err)
			return model.Step{}, repo.ErrFailedToUpdate
		}
		return s, nil
	}
	return model.Step{}, nil
}

func (r *implRepository) touchPlan(ctx context.Context, opt repo.UpdateStepOptions) error {
	plans, err := r.readPlans(ctx)
	if err != nil {
		return err
	}
	for _, pr := range plans {
		if pr.plan.ID == opt.PlanID {
			p := pr.plan
			p.UpdatedAt = opt.UpdatedAt.UTC()
			return r.client.Update(ctx, rowRange(plansSheet, pr.index), [][]string{planToRow(p)})
		}
	}
	return nil
}

// DeletePlan clears the plan row and all of its step rows.
func (r *implRepository) DeletePlan(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	steps, err := r.readSteps(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePlan"), err)
		return repo.ErrFailedToDelete
	}
	for _, sr := range steps {
		if sr.step.PlanID != id {
			continue
		}
		if err := r.client.Clear(ctx, rowRange(stepsSheet, sr.index)); err != nil {
			r.l.Errorf(ctx, "%s step: %v", r.dsn("DeletePlan"), err)
			return repo.ErrFailedToDelete
		}
	}

	plans, err := r.readPlans(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePlan"), err)
		return repo.ErrFailedToDelete
	}
	for _, pr := range plans {
		if pr.plan.ID != id {
			continue
		}
		if err := r.client.Clear(ctx, rowRange(plansSheet, pr.index)); err != nil {
			r.l.Errorf(ctx, "%s plan: %v", r.dsn("DeletePlan"), err)
			return repo.ErrFailedToDelete
		}
	}
	return nil
}

// readPlans returns every non-empty plan row. Malformed rows are logged and skipped.
func (r *implRepository) readPlans(ctx context.Context) ([]planRow, error) {
	rows, err := r.client.Read(ctx, tableRange(plansSheet))
	if err != nil {
		return nil, err
	}

	out := make([]planRow, 0, len(rows))
	for i, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		p, err := r.rowToPlan(row)
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %d: %v", r.dsn("readPlans"), i+firstRow, err)
			continue
		}
		out = append(out, planRow{index: i, plan: p})
	}
	return out, nil
}

func (r *implRepository) readSteps(ctx context.Context) ([]stepRow, error) {
	rows, err := r.client.Read(ctx, tableRange(stepsSheet))
	if err != nil {
		return nil, err
	}

	out := make([]stepRow, 0, len(rows))
	for i, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		s, err := r.rowToStep(row)
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %d: %v", r.dsn("readSteps"), i+firstRow, err)
			continue
		}
		out = append(out, stepRow{index: i, step: s})
	}
	return out, nil
}

func (r *implRepository) attachSteps(ctx context.Context, plans []model.Plan) error {
	if len(plans) == 0 {
		return nil
	}
	steps, err := r.readSteps(ctx)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(plans))
	for i, p := range plans {
		index[p.ID] = i
	}
	for _, sr := range steps {
		if i, ok := index[sr.step.PlanID]; ok {
			plans[i].Steps = append(plans[i].Steps, sr.step)
		}
	}
	for i := range plans {
		sort.Slice(plans[i].Steps, func(a, b int) bool {
			return plans[i].Steps[a].Position < plans[i].Steps[b].Position
		})
	}
	return nil
}
