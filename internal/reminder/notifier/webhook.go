package notifier

import (
	"context"
	"time"

	"action-plan-assistant/internal/reminder"
	"action-plan-assistant/pkg/datemath"
)

// EventSender is the part of *webhook.Notifier used for alerts.
type EventSender interface {
	Send(ctx context.Context, eventType string, data any, at time.Time) error
}

// Webhook posts signed alert events for an external mailer.
type Webhook struct {
	sender EventSender
}

func NewWebhook(sender EventSender) *Webhook {
	return &Webhook{sender: sender}
}

func (w *Webhook) Name() string { return "webhook" }

// alertData is the event body. Field names are part of the public webhook contract.
type alertData struct {
	PlanID        string `json:"plan_id"`
	PlanTitle     string `json:"plan_title"`
	UserID        string `json:"user_id"`
	Position      int    `json:"position"`
	Text          string `json:"text"`
	DueDate       string `json:"due_date"`
	DaysRemaining int    `json:"days_remaining"`
	Status        string `json:"status"`
	Urgency       string `json:"urgency_level"`
}

func (w *Webhook) Notify(ctx context.Context, alert reminder.Alert) error {
	return w.sender.Send(ctx, alert.EventType(), alertData{
		PlanID:        alert.PlanID,
		PlanTitle:     alert.PlanTitle,
		UserID:        alert.UserID,
		Position:      alert.Step.Position,
		Text:          alert.Step.Text,
		DueDate:       datemath.FormatDate(alert.Step.DueDate),
		DaysRemaining: alert.Info.DaysRemaining,
		Status:        string(alert.Info.Status),
		Urgency:       alert.Info.Urgency.String(),
	}, alert.At)
}
