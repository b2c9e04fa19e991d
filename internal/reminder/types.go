package reminder

import (
	"time"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/pkg/deadline"
)

// Alert is one overdue or due-today step.
type Alert struct {
	PlanID    string
	PlanTitle string
	UserID    string
	Step      model.Step
	Info      deadline.Info
	At        time.Time
}

// EventType names the alert for outgoing webhooks.
func (a Alert) EventType() string {
	return "step." + string(a.Info.Status)
}

type ScanOutput struct {
	Plans   int
	Checked int
	Alerts  int
	Sent    int
	// Skipped counts alerts already sent within the dedup window.
	Skipped int
	Failed  int
}
