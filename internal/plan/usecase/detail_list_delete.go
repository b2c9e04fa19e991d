package usecase

import (
	"context"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	repo "action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/deadline"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (plan.DetailOutput, error) {
	p, err := uc.getOwnedPlan(ctx, sc, id)
	if err != nil {
		return plan.DetailOutput{}, err
	}
	return plan.DetailOutput{Plan: p, Steps: uc.evaluate(p.Steps)}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input plan.ListInput) (plan.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	plans, total, err := uc.repo.ListPlans(ctx, repo.ListPlansOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPlans: %v", err)
		return plan.ListOutput{}, err
	}

	summaries := make([]plan.PlanSummary, len(plans))
	for i, p := range plans {
		summaries[i] = uc.summarize(p)
	}

	return plan.ListOutput{Plans: summaries, Total: total, Limit: limit, Offset: offset}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	p, err := uc.getOwnedPlan(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeletePlan(ctx, p.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeletePlan: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) summarize(p model.Plan) plan.PlanSummary {
	s := plan.PlanSummary{Plan: p, Total: len(p.Steps), Completed: p.CompletedCount()}
	s.Percent = percent(s.Completed, s.Total)

	for _, v := range uc.evaluate(p.Steps) {
		if v.Info.Status == deadline.StatusOverdue {
			s.Overdue++
		}
		if !v.Step.Completed && s.NextDue == nil {
			due := v.Step.DueDate
			s.NextDue = &due
		}
	}
	return s
}
