package plan

import (
	"context"

	"action-plan-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Plan lifecycle
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Step tracking
	SetStepCompletion(ctx context.Context, sc model.Scope, input SetStepCompletionInput) (StepOutput, error)
	UpdateStepNote(ctx context.Context, sc model.Scope, input UpdateStepNoteInput) (StepOutput, error)
	Progress(ctx context.Context, sc model.Scope, id string) (ProgressOutput, error)

	// Markdown checklist round trip
	ExportChecklist(ctx context.Context, sc model.Scope, id string) (ExportChecklistOutput, error)
	SyncChecklist(ctx context.Context, sc model.Scope, input SyncChecklistInput) (SyncChecklistOutput, error)
}
