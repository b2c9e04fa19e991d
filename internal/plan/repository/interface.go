package repository

import (
	"context"

	"action-plan-assistant/internal/model"
)

// Repository is the composed interface for the plan domain data store.
type Repository interface {
	PlanRepository
	StepRepository
}

// PlanRepository stores plans together with their steps.
// Reads return a zero-value Plan (ID == "") when nothing matches.
type PlanRepository interface {
	CreatePlan(ctx context.Context, opt CreatePlanOptions) (model.Plan, error)
	GetPlan(ctx context.Context, opt GetPlanOptions) (model.Plan, error)
	ListPlans(ctx context.Context, opt ListPlansOptions) ([]model.Plan, int, error)
	// ListActivePlans returns every plan that still has a pending step.
	ListActivePlans(ctx context.Context) ([]model.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

// StepRepository updates the mutable fields of a step.
type StepRepository interface {
	// UpdateStep returns a zero-value Step (PlanID == "") when the step does not exist.
	UpdateStep(ctx context.Context, opt UpdateStepOptions) (model.Step, error)
}
