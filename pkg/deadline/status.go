package deadline

import (
	"time"

	"action-plan-assistant/pkg/datemath"
)

// Evaluate classifies a due date at now. Completion wins over every other state.
func Evaluate(due time.Time, completed bool, now time.Time) Info {
	days := datemath.DaysUntil(due, now)
	if completed {
		return Info{DaysRemaining: days, Urgency: UrgencyLow, Status: StatusCompleted}
	}

	switch {
	case days < 0:
		return Info{DaysRemaining: days, IsOverdue: true, Urgency: UrgencyCritical, Status: StatusOverdue}
	case days == 0:
		return Info{DaysRemaining: days, Urgency: UrgencyHigh, Status: StatusDueToday}
	case days <= 2:
		return Info{DaysRemaining: days, Urgency: UrgencyHigh, Status: StatusUpcoming}
	case days <= 7:
		return Info{DaysRemaining: days, Urgency: UrgencyMedium, Status: StatusUpcoming}
	default:
		return Info{DaysRemaining: days, Urgency: UrgencyLow, Status: StatusUpcoming}
	}
}
