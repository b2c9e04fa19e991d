package plan

import (
	"time"

	"action-plan-assistant/internal/checklist"
	"action-plan-assistant/internal/model"
	"action-plan-assistant/pkg/deadline"
)

// StepView is a persisted step together with its status at evaluation time.
type StepView struct {
	Step model.Step
	Info deadline.Info
}

// --- UseCase Inputs ---

type GenerateInput struct {
	Idea string
	// StartDate defaults to today in the scheduler timezone.
	StartDate time.Time
	// MaxDays defaults to the configured horizon.
	MaxDays int
}

type ListInput struct {
	Limit  int
	Offset int
}

type SetStepCompletionInput struct {
	PlanID    string
	Position  int
	Completed bool
}

type UpdateStepNoteInput struct {
	PlanID   string
	Position int
	Note     string
}

type SyncChecklistInput struct {
	PlanID   string
	Markdown string
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Plan  model.Plan
	Steps []StepView
	// CalendarEvents counts steps published to Google Calendar.
	CalendarEvents int
}

type DetailOutput struct {
	Plan  model.Plan
	Steps []StepView
}

// PlanSummary is one row of the plan list.
type PlanSummary struct {
	Plan      model.Plan
	Total     int
	Completed int
	Percent   float64
	Overdue   int
	// NextDue is the due date of the first pending step, nil when the plan is finished.
	NextDue *time.Time
}

type ListOutput struct {
	Plans  []PlanSummary
	Total  int
	Limit  int
	Offset int
}

type StepOutput struct {
	Step StepView
}

type ProgressOutput struct {
	PlanID    string
	Title     string
	Total     int
	Completed int
	Pending   int
	Percent   float64
	ByStatus  map[deadline.Status]int
	NextStep  *StepView
	Finished  bool
}

type ExportChecklistOutput struct {
	Filename string
	Markdown string
}

type SyncChecklistOutput struct {
	Updated int
	Steps   []StepView
	// Stats counts the submitted checkboxes.
	Stats checklist.ChecklistStats
	// Finished is true when every submitted checkbox is ticked.
	Finished bool
}
