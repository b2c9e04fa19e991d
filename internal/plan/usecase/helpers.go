package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	repo "action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/deadline"
)

const maxTitleRunes = 80

var (
	codeFencePattern  = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	stepPrefixPattern = regexp.MustCompile(`^(?:[-*•]\s+|\d+[.)]\s+|(?i:paso|step)\s*\d+\s*[:.-]\s*)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// generatedPlan is the JSON object the model is asked for.
type generatedPlan struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFencePattern.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// parseGeneratedPlan accepts the requested object or a bare array of steps.
func parseGeneratedPlan(text string) (generatedPlan, error) {
	cleaned := sanitizeJSONResponse(text)

	var out generatedPlan
	objErr := json.Unmarshal([]byte(cleaned), &out)
	if objErr == nil {
		return out, nil
	}

	var steps []string
	if err := json.Unmarshal([]byte(cleaned), &steps); err == nil {
		return generatedPlan{Steps: steps}, nil
	}
	return generatedPlan{}, objErr
}

// cleanSteps flattens whitespace, strips list markers, drops blanks and caps the count.
func cleanSteps(raw []string, maxSteps int) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = whitespacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
		s = strings.TrimSpace(stepPrefixPattern.ReplaceAllString(s, ""))
		if s == "" {
			continue
		}
		out = append(out, s)
		if maxSteps > 0 && len(out) == maxSteps {
			break
		}
	}
	return out
}

// planTitle prefers the generated title and falls back to the start of the idea.
func planTitle(generated, idea string) string {
	title := whitespacePattern.ReplaceAllString(strings.TrimSpace(generated), " ")
	if title == "" {
		title = whitespacePattern.ReplaceAllString(idea, " ")
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		r := []rune(title)
		title = strings.TrimSpace(string(r[:maxTitleRunes-1])) + "…"
	}
	return title
}

// getOwnedPlan loads a plan of the caller. Other users' plans are reported as not found.
func (uc *implUseCase) getOwnedPlan(ctx context.Context, sc model.Scope, id string) (model.Plan, error) {
	if strings.TrimSpace(id) == "" {
		return model.Plan{}, plan.ErrPlanNotFound
	}
	p, err := uc.repo.GetPlan(ctx, repo.GetPlanOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwnedPlan GetPlan: %v", err)
		return model.Plan{}, err
	}
	if p.ID == "" {
		return model.Plan{}, plan.ErrPlanNotFound
	}
	return p, nil
}

// evaluate attaches the status of every step at now.
func (uc *implUseCase) evaluate(steps []model.Step) []plan.StepView {
	now := uc.now()
	views := make([]plan.StepView, len(steps))
	for i, s := range steps {
		views[i] = plan.StepView{Step: s, Info: deadline.Evaluate(s.DueDate, s.Completed, now)}
	}
	return views
}

func (uc *implUseCase) evaluateOne(s model.Step) plan.StepView {
	return plan.StepView{Step: s, Info: deadline.Evaluate(s.DueDate, s.Completed, uc.now())}
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// scheduleError maps scheduler input errors to plan.ErrScheduleUnavailable.
func scheduleError(err error) error {
	if errors.Is(err, deadline.ErrInvalidInput) {
		return fmt.Errorf("%w: %w", plan.ErrScheduleUnavailable, err)
	}
	return err
}
