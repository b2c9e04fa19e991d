package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"action-plan-assistant/internal/reminder"
	"action-plan-assistant/pkg/datemath"
	"action-plan-assistant/pkg/deadline"
)

// HTMLSender is the part of *telegram.Bot used for alerts.
type HTMLSender interface {
	SendHTML(ctx context.Context, chatID int64, text string) error
}

// Telegram posts alerts to a single chat.
type Telegram struct {
	bot      HTMLSender
	chatID   int64
	language string
}

// NewTelegram returns a Telegram notifier. language is "es" or "en".
func NewTelegram(bot HTMLSender, chatID int64, language string) *Telegram {
	return &Telegram{bot: bot, chatID: chatID, language: language}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Notify(ctx context.Context, alert reminder.Alert) error {
	return t.bot.SendHTML(ctx, t.chatID, t.format(alert))
}

func (t *Telegram) format(a reminder.Alert) string {
	due := datemath.FormatDate(a.Step.DueDate)
	step := html.EscapeString(a.Step.Text)
	title := html.EscapeString(a.PlanTitle)

	var b strings.Builder
	if t.language == "en" {
		if a.Info.Status == deadline.StatusOverdue {
			fmt.Fprintf(&b, "⚠️ <b>Overdue by %d day(s)</b>\n", -a.Info.DaysRemaining)
		} else {
			b.WriteString("⏰ <b>Due today</b>\n")
		}
		fmt.Fprintf(&b, "Plan: %s\nStep %d: %s\nDue: %s", title, a.Step.Position, step, due)
		return b.String()
	}

	if a.Info.Status == deadline.StatusOverdue {
		fmt.Fprintf(&b, "⚠️ <b>Atrasado %d día(s)</b>\n", -a.Info.DaysRemaining)
	} else {
		b.WriteString("⏰ <b>Vence hoy</b>\n")
	}
	fmt.Fprintf(&b, "Plan: %s\nPaso %d: %s\nFecha límite: %s", title, a.Step.Position, step, due)
	return b.String()
}
