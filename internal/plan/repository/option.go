package repository

import (
	"time"

	"action-plan-assistant/internal/model"
)

// CreatePlanOptions holds a new plan. The store assigns the ID.
// Steps keep their positions, difficulties and due dates as given.
type CreatePlanOptions struct {
	UserID    string
	Idea      string
	Title     string
	StartDate time.Time
	MaxDays   int
	Steps     []model.Step
	CreatedAt time.Time
}

// GetPlanOptions filters a single plan. UserID, when set, restricts to that owner.
type GetPlanOptions struct {
	ID     string
	UserID string
}

// ListPlansOptions holds filter and pagination parameters for listing plans.
type ListPlansOptions struct {
	UserID string
	Limit  int
	Offset int
}

// UpdateStepOptions overwrites the mutable fields of one step.
type UpdateStepOptions struct {
	PlanID      string
	Position    int
	Completed   bool
	CompletedAt *time.Time
	Note        string
	UpdatedAt   time.Time
}
