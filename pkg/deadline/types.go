// Package deadline schedules the steps of an action plan.
//
// Three pure pieces compose left to right: EstimateDifficulty turns a step's text and
// position into a weight, Allocator spreads a fixed horizon over those weights, and
// Evaluate classifies a due date against "now". Only Evaluate depends on the time of the
// call; allocation is a function of (scores, horizon) alone, so a persisted plan can
// always be reproduced.
package deadline

import "time"

// Horizon is the calendar window a plan is scheduled in.
type Horizon struct {
	StartDate time.Time
	MaxDays   int
}

// NewHorizon returns a horizon with the default length.
func NewHorizon(start time.Time) Horizon {
	return Horizon{StartDate: start, MaxDays: DefaultMaxDays}
}

// Config holds the allocation bounds. The zero value is not usable, start from DefaultConfig.
type Config struct {
	InitialOffsetDays int
	MinTaskDays       int
	MaxTaskDays       int
}

// DefaultConfig returns the standard allocation bounds.
func DefaultConfig() Config {
	return Config{
		InitialOffsetDays: DefaultInitialOffsetDays,
		MinTaskDays:       MinTaskDays,
		MaxTaskDays:       MaxTaskDays,
	}
}

// Deadline is one scheduled step.
type Deadline struct {
	Position   int
	Text       string
	Difficulty float64
	DueDate    time.Time
}

// Status is the temporal state of a step.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusDueToday  Status = "due_today"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

// Info is the derived view of one step at a given moment. It is never persisted.
type Info struct {
	DaysRemaining int          `json:"days_remaining"`
	IsOverdue     bool         `json:"is_overdue"`
	Urgency       UrgencyLevel `json:"urgency_level"`
	Status        Status       `json:"status"`
}

// NeedsAlert reports whether the step should trigger a reminder.
func (i Info) NeedsAlert() bool {
	return i.Status == StatusOverdue || i.Status == StatusDueToday
}
