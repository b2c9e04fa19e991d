package usecase

import (
	"context"
	"errors"
	"fmt"

	"action-plan-assistant/internal/reminder"
	"action-plan-assistant/pkg/datemath"
	"action-plan-assistant/pkg/deadline"
)

// Scan sends one alert per (plan, step, status, day). Notifier failures are counted, not returned.
func (uc *implUseCase) Scan(ctx context.Context) (reminder.ScanOutput, error) {
	plans, err := uc.plans.ListActivePlans(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reminder.Scan ListActivePlans: %v", err)
		return reminder.ScanOutput{}, err
	}

	now := uc.now().In(uc.cfg.Location)
	out := reminder.ScanOutput{Plans: len(plans)}

	for _, p := range plans {
		for _, s := range p.Steps {
			if s.Completed {
				continue
			}
			out.Checked++

			info := deadline.Evaluate(s.DueDate, s.Completed, now)
			if !info.NeedsAlert() {
				continue
			}
			out.Alerts++

			key := fmt.Sprintf("%s|%d|%s|%s", p.ID, s.Position, info.Status, datemath.FormatDate(now))
			if uc.sent.Contains(key) {
				out.Skipped++
				continue
			}

			alert := reminder.Alert{
				PlanID:    p.ID,
				PlanTitle: p.Title,
				UserID:    p.UserID,
				Step:      s,
				Info:      info,
				At:        now,
			}
			if err := uc.dispatch(ctx, alert); err != nil {
				out.Failed++
				continue
			}
			uc.sent.Add(key, struct{}{})
			out.Sent++
		}
	}

	uc.l.Infof(ctx, "reminder.Scan: plans=%d checked=%d alerts=%d sent=%d skipped=%d failed=%d",
		out.Plans, out.Checked, out.Alerts, out.Sent, out.Skipped, out.Failed)
	return out, nil
}

// dispatch sends the alert through every notifier. It fails only when all of them fail.
func (uc *implUseCase) dispatch(ctx context.Context, alert reminder.Alert) error {
	var errs []error
	for _, n := range uc.notifiers {
		if err := n.Notify(ctx, alert); err != nil {
			uc.l.Warnf(ctx, "reminder.dispatch %s: plan=%s step=%d: %v", n.Name(), alert.PlanID, alert.Step.Position, err)
			errs = append(errs, err)
		}
	}
	if len(errs) == len(uc.notifiers) {
		return fmt.Errorf("%w: %w", reminder.ErrAllNotifiersFail, errors.Join(errs...))
	}
	return nil
}
