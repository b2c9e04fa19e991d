package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"action-plan-assistant/internal/checklist"
	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
)

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// ExportChecklist renders the plan as a Markdown checklist.
func (uc *implUseCase) ExportChecklist(ctx context.Context, sc model.Scope, id string) (plan.ExportChecklistOutput, error) {
	p, err := uc.getOwnedPlan(ctx, sc, id)
	if err != nil {
		return plan.ExportChecklistOutput{}, err
	}

	items := make([]checklist.Item, len(p.Steps))
	for i, s := range p.Steps {
		items[i] = checklist.Item{Text: s.Text, Checked: s.Completed, Due: s.DueDate}
	}

	return plan.ExportChecklistOutput{
		Filename: checklistFilename(p),
		Markdown: uc.checklist.Render(checklist.RenderInput{Title: p.Title, Items: items}),
	}, nil
}

// SyncChecklist applies checkbox states back to the steps in order. Every line must
// still name its step (same text, same due date when shown) before anything is written.
func (uc *implUseCase) SyncChecklist(ctx context.Context, sc model.Scope, input plan.SyncChecklistInput) (plan.SyncChecklistOutput, error) {
	p, err := uc.getOwnedPlan(ctx, sc, input.PlanID)
	if err != nil {
		return plan.SyncChecklistOutput{}, err
	}

	boxes := uc.checklist.ParseCheckboxes(input.Markdown)
	if len(boxes) != len(p.Steps) {
		return plan.SyncChecklistOutput{}, fmt.Errorf("%w: got %d checkboxes for %d steps",
			plan.ErrChecklistMismatch, len(boxes), len(p.Steps))
	}
	for i, s := range p.Steps {
		if err := matchCheckbox(boxes[i], s); err != nil {
			return plan.SyncChecklistOutput{}, err
		}
	}

	now := uc.now()
	steps := append([]model.Step(nil), p.Steps...)
	var applied []model.Step
	for i, s := range p.Steps {
		if boxes[i].Checked == s.Completed {
			continue
		}

		var completedAt *time.Time
		if boxes[i].Checked {
			completedAt = &now
		}
		next, err := uc.updateStep(ctx, s, boxes[i].Checked, completedAt, s.Note, now)
		if err != nil {
			uc.revertSteps(ctx, applied, now)
			return plan.SyncChecklistOutput{}, err
		}
		applied = append(applied, s)
		steps[i] = next
	}

	if len(applied) > 0 {
		uc.l.Infof(ctx, "uc.SyncChecklist: plan=%s updated=%d", p.ID, len(applied))
	}
	return plan.SyncChecklistOutput{
		Updated:  len(applied),
		Steps:    uc.evaluate(steps),
		Stats:    uc.checklist.GetStats(input.Markdown),
		Finished: uc.checklist.IsFullyCompleted(input.Markdown),
	}, nil
}

// matchCheckbox rejects a line that no longer describes step s, e.g. after reordering.
func matchCheckbox(box checklist.Checkbox, s model.Step) error {
	if !strings.EqualFold(strings.Join(strings.Fields(box.Text), " "), strings.Join(strings.Fields(s.Text), " ")) {
		return fmt.Errorf("%w: line %d is %q, step %d is %q",
			plan.ErrChecklistMismatch, box.Line+1, box.Text, s.Position, s.Text)
	}
	if !box.Due.IsZero() && box.Due.Format(checklist.DueLayout) != s.DueDate.Format(checklist.DueLayout) {
		return fmt.Errorf("%w: line %d is due %s, step %d is due %s",
			plan.ErrChecklistMismatch, box.Line+1, box.Due.Format(checklist.DueLayout),
			s.Position, s.DueDate.Format(checklist.DueLayout))
	}
	return nil
}

// revertSteps restores steps written earlier in a sync that failed part way.
// Errors are logged: the original failure is what the caller sees.
func (uc *implUseCase) revertSteps(ctx context.Context, original []model.Step, now time.Time) {
	for _, s := range original {
		if _, err := uc.updateStep(ctx, s, s.Completed, s.CompletedAt, s.Note, now); err != nil {
			uc.l.Errorf(ctx, "uc.SyncChecklist revert step %d of plan %s: %v", s.Position, s.PlanID, err)
		}
	}
}

func checklistFilename(p model.Plan) string {
	slug := strings.Trim(filenameUnsafe.ReplaceAllString(strings.ToLower(p.Title), "-"), "-")
	if slug == "" {
		slug = "plan"
	}
	return slug + ".md"
}
