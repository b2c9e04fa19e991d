package http

import (
	"errors"
	"net/http"

	"action-plan-assistant/internal/plan"
	pkgErrors "action-plan-assistant/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongQuery    = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong query")
	errWrongPosition = pkgErrors.NewHTTPError(http.StatusBadRequest, "position must be a positive integer")
	errWrongDate     = pkgErrors.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD or a relative date such as tomorrow")
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and are answered with a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "plan not found")
	case errors.Is(err, plan.ErrStepNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "step not found")
	case errors.Is(err, plan.ErrEmptyIdea):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "idea is required")
	case errors.Is(err, plan.ErrIdeaTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "idea is too long")
	case errors.Is(err, plan.ErrNoteTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "note is too long")
	case errors.Is(err, plan.ErrChecklistMismatch):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "checklist does not match the plan steps")
	case errors.Is(err, plan.ErrScheduleUnavailable):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "the plan cannot be scheduled in the requested horizon")
	case errors.Is(err, plan.ErrGenerationFailed), errors.Is(err, plan.ErrNoStepsGenerated):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "the plan generator is unavailable, try again later")
	default:
		return err
	}
}
