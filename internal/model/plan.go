package model

import "time"

// Plan is one business idea turned into an ordered list of scheduled steps.
type Plan struct {
	ID        string
	UserID    string
	Idea      string
	Title     string
	StartDate time.Time // midnight of the first day of the horizon
	MaxDays   int
	Steps     []Step
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Step is one actionable task of a Plan. Position is 1-based and DueDate is fixed
// when the plan is created.
type Step struct {
	PlanID      string
	Position    int
	Text        string
	Difficulty  float64
	DueDate     time.Time
	Completed   bool
	CompletedAt *time.Time
	Note        string
}

// CompletedCount returns how many steps are done.
func (p Plan) CompletedCount() int {
	n := 0
	for _, s := range p.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// IsFinished reports whether every step is completed.
func (p Plan) IsFinished() bool {
	return len(p.Steps) > 0 && p.CompletedCount() == len(p.Steps)
}

// Step returns the step at position, or false when absent.
func (p Plan) Step(position int) (Step, bool) {
	for _, s := range p.Steps {
		if s.Position == position {
			return s, true
		}
	}
	return Step{}, false
}
