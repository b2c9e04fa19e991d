package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	repo "action-plan-assistant/internal/plan/repository"
)

// SetStepCompletion marks a step done or pending. Repeating the current state is a no-op.
func (uc *implUseCase) SetStepCompletion(ctx context.Context, sc model.Scope, input plan.SetStepCompletionInput) (plan.StepOutput, error) {
	p, err := uc.getOwnedPlan(ctx, sc, input.PlanID)
	if err != nil {
		return plan.StepOutput{}, err
	}
	step, ok := p.Step(input.Position)
	if !ok {
		return plan.StepOutput{}, plan.ErrStepNotFound
	}
	if step.Completed == input.Completed {
		return plan.StepOutput{Step: uc.evaluateOne(step)}, nil
	}

	now := uc.now()
	var completedAt *time.Time
	if input.Completed {
		completedAt = &now
	}

	updated, err := uc.updateStep(ctx, step, input.Completed, completedAt, step.Note, now)
	if err != nil {
		return plan.StepOutput{}, err
	}
	return plan.StepOutput{Step: uc.evaluateOne(updated)}, nil
}

// UpdateStepNote replaces the free-text note of a step.
func (uc *implUseCase) UpdateStepNote(ctx context.Context, sc model.Scope, input plan.UpdateStepNoteInput) (plan.StepOutput, error) {
	note := strings.TrimSpace(input.Note)
	if utf8.RuneCountInString(note) > plan.MaxNoteLength {
		return plan.StepOutput{}, plan.ErrNoteTooLong
	}

	p, err := uc.getOwnedPlan(ctx, sc, input.PlanID)
	if err != nil {
		return plan.StepOutput{}, err
	}
	step, ok := p.Step(input.Position)
	if !ok {
		return plan.StepOutput{}, plan.ErrStepNotFound
	}

	updated, err := uc.updateStep(ctx, step, step.Completed, step.CompletedAt, note, uc.now())
	if err != nil {
		return plan.StepOutput{}, err
	}
	return plan.StepOutput{Step: uc.evaluateOne(updated)}, nil
}

func (uc *implUseCase) updateStep(ctx context.Context, step model.Step, completed bool, completedAt *time.Time, note string, now time.Time) (model.Step, error) {
	updated, err := uc.repo.UpdateStep(ctx, repo.UpdateStepOptions{
		PlanID:      step.PlanID,
		Position:    step.Position,
		Completed:   completed,
		CompletedAt: completedAt,
		Note:        note,
		UpdatedAt:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.updateStep UpdateStep: %v", err)
		return model.Step{}, err
	}
	if updated.PlanID == "" {
		return model.Step{}, plan.ErrStepNotFound
	}
	return updated, nil
}
