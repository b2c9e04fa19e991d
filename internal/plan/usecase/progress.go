package usecase

import (
	"context"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	"action-plan-assistant/pkg/deadline"
)

// Progress summarizes a plan for the dashboard.
func (uc *implUseCase) Progress(ctx context.Context, sc model.Scope, id string) (plan.ProgressOutput, error) {
	p, err := uc.getOwnedPlan(ctx, sc, id)
	if err != nil {
		return plan.ProgressOutput{}, err
	}

	out := plan.ProgressOutput{
		PlanID:    p.ID,
		Title:     p.Title,
		Total:     len(p.Steps),
		Completed: p.CompletedCount(),
		ByStatus: map[deadline.Status]int{
			deadline.StatusUpcoming:  0,
			deadline.StatusDueToday:  0,
			deadline.StatusOverdue:   0,
			deadline.StatusCompleted: 0,
		},
		Finished: p.IsFinished(),
	}
	out.Pending = out.Total - out.Completed
	out.Percent = percent(out.Completed, out.Total)

	for _, v := range uc.evaluate(p.Steps) {
		out.ByStatus[v.Info.Status]++
		if !v.Step.Completed && out.NextStep == nil {
			next := v
			out.NextStep = &next
		}
	}
	return out, nil
}
