package http

import (
	"time"

	"action-plan-assistant/internal/plan"
	"action-plan-assistant/pkg/datemath"
	"action-plan-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    plan.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the plan domain. loc interprets request dates.
func New(l log.Logger, uc plan.UseCase, loc *time.Location) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: datemath.NewParserInLocation(loc),
		now:   time.Now,
	}
}
