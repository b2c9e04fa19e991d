package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan"
	repo "action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/datemath"
	"action-plan-assistant/pkg/deadline"
	"action-plan-assistant/pkg/gcalendar"
	"action-plan-assistant/pkg/llmprovider"
)

// Generate turns an idea into a scheduled, persisted plan.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input plan.GenerateInput) (plan.GenerateOutput, error) {
	idea := strings.TrimSpace(input.Idea)
	if idea == "" {
		return plan.GenerateOutput{}, plan.ErrEmptyIdea
	}
	if utf8.RuneCountInString(idea) > plan.MaxIdeaLength {
		return plan.GenerateOutput{}, plan.ErrIdeaTooLong
	}

	horizon := uc.horizon(input)
	if err := uc.allocator.ValidateHorizon(horizon); err != nil {
		return plan.GenerateOutput{}, scheduleError(err)
	}

	generated, err := uc.generateSteps(ctx, idea, horizon.MaxDays)
	if err != nil {
		return plan.GenerateOutput{}, err
	}

	deadlines, err := uc.allocator.Schedule(generated.Steps, horizon)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Generate Schedule: %v", err)
		return plan.GenerateOutput{}, scheduleError(err)
	}

	steps := make([]model.Step, len(deadlines))
	for i, d := range deadlines {
		steps[i] = model.Step{
			Position:   d.Position,
			Text:       d.Text,
			Difficulty: d.Difficulty,
			DueDate:    d.DueDate,
		}
	}

	p, err := uc.repo.CreatePlan(ctx, repo.CreatePlanOptions{
		UserID:    sc.UserID,
		Idea:      idea,
		Title:     planTitle(generated.Title, idea),
		StartDate: horizon.StartDate,
		MaxDays:   horizon.MaxDays,
		Steps:     steps,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate CreatePlan: %v", err)
		return plan.GenerateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Generate: plan=%s steps=%d horizon=%d", p.ID, len(p.Steps), p.MaxDays)

	return plan.GenerateOutput{
		Plan:           p,
		Steps:          uc.evaluate(p.Steps),
		CalendarEvents: uc.publishCalendar(ctx, p),
	}, nil
}

// horizon resolves the start date and length of a new plan.
func (uc *implUseCase) horizon(input plan.GenerateInput) deadline.Horizon {
	start := input.StartDate
	if start.IsZero() {
		start = uc.now().In(uc.cfg.Location)
	}
	h := deadline.NewHorizon(datemath.StartOfDay(start))
	switch {
	case input.MaxDays > 0:
		h.MaxDays = input.MaxDays
	case uc.cfg.MaxDays > 0:
		h.MaxDays = uc.cfg.MaxDays
	}
	return h
}

func (uc *implUseCase) generateSteps(ctx context.Context, idea string, maxDays int) (generatedPlan, error) {
	req := llmprovider.NewTextRequest(
		systemPrompt(uc.cfg.Language),
		buildPlanPrompt(uc.cfg.Language, idea, uc.cfg.MaxSteps, maxDays),
	)
	req.Temperature = uc.cfg.Temperature
	req.MaxTokens = uc.cfg.MaxTokens
	req.JSONOutput = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.generateSteps GenerateContent: %v", err)
		return generatedPlan{}, fmt.Errorf("%w: %w", plan.ErrGenerationFailed, err)
	}

	text := resp.Content.Text()
	out, err := parseGeneratedPlan(text)
	if err != nil {
		uc.l.Warnf(ctx, "uc.generateSteps parse: %v, raw=%q", err, text)
		return generatedPlan{}, fmt.Errorf("%w: %w", plan.ErrGenerationFailed, err)
	}

	out.Steps = cleanSteps(out.Steps, uc.cfg.MaxSteps)
	if len(out.Steps) == 0 {
		return generatedPlan{}, plan.ErrNoStepsGenerated
	}
	return out, nil
}

// publishCalendar mirrors every step as an all-day event. Failures are logged and skipped.
func (uc *implUseCase) publishCalendar(ctx context.Context, p model.Plan) int {
	if uc.calendar == nil {
		return 0
	}

	published := 0
	for _, s := range p.Steps {
		_, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     fmt.Sprintf("[%s] %d. %s", p.Title, s.Position, s.Text),
			Description: p.Idea,
			Date:        s.DueDate,
			Reminder:    uc.cfg.CalendarReminder,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.publishCalendar: plan=%s step=%d: %v", p.ID, s.Position, err)
			continue
		}
		published++
	}
	return published
}
