package usecase

import (
	"context"
	"time"

	"action-plan-assistant/internal/checklist"
	"action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/deadline"
	"action-plan-assistant/pkg/gcalendar"
	"action-plan-assistant/pkg/llmprovider"
	"action-plan-assistant/pkg/log"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Generator produces text for a prompt. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// CalendarPublisher mirrors due dates to an external calendar. *gcalendar.Client satisfies it.
type CalendarPublisher interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
}

// Config holds the planner settings.
type Config struct {
	MaxSteps    int
	Language    string // "es" or "en"
	Temperature float64
	MaxTokens   int
	// MaxDays is the horizon used when a request does not set one.
	MaxDays  int
	Location *time.Location

	CalendarID       string
	CalendarReminder time.Duration
}

// implUseCase is the private implementation of plan.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	llm       Generator
	allocator *deadline.Allocator
	checklist checklist.Service
	calendar  CalendarPublisher
	cfg       Config
	now       func() time.Time
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithCalendar publishes every generated step as an all-day event.
func WithCalendar(c CalendarPublisher) Option {
	return func(uc *implUseCase) { uc.calendar = c }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates a new plan UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	llm Generator,
	allocator *deadline.Allocator,
	cfg Config,
	opts ...Option,
) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = deadline.DefaultMaxDays
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 10
	}
	if cfg.Language == "" {
		cfg.Language = LanguageSpanish
	}

	uc := &implUseCase{
		l:         l,
		repo:      repo,
		llm:       llm,
		allocator: allocator,
		checklist: checklist.New(),
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
