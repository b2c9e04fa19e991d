package plan

import "errors"

var (
	ErrEmptyIdea           = errors.New("idea is empty")
	ErrIdeaTooLong         = errors.New("idea is too long")
	ErrNoStepsGenerated    = errors.New("no steps generated")
	ErrGenerationFailed    = errors.New("plan generation failed")
	ErrScheduleUnavailable = errors.New("schedule unavailable")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrStepNotFound        = errors.New("step not found")
	ErrNoteTooLong         = errors.New("note is too long")
	ErrChecklistMismatch   = errors.New("checklist does not match plan steps")
)

const (
	MaxIdeaLength = 4000
	MaxNoteLength = 2000
)
