package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/reminder"
	"action-plan-assistant/pkg/log"
)

const (
	defaultInterval  = time.Hour
	defaultDedupTTL  = 24 * time.Hour
	defaultDedupSize = 4096
)

// PlanLister returns plans with pending steps. The plan repository satisfies it.
type PlanLister interface {
	ListActivePlans(ctx context.Context) ([]model.Plan, error)
}

type Config struct {
	Interval  time.Duration
	DedupTTL  time.Duration
	DedupSize int
	// Location decides which calendar day an alert belongs to.
	Location *time.Location
}

type implUseCase struct {
	l         log.Logger
	plans     PlanLister
	notifiers []reminder.Notifier
	sent      *expirable.LRU[string, struct{}]
	cfg       Config
	now       func() time.Time
}

// New creates the reminder use case. It fails when no notifier is configured.
func New(l log.Logger, plans PlanLister, notifiers []reminder.Notifier, cfg Config) (*implUseCase, error) {
	if len(notifiers) == 0 {
		return nil, reminder.ErrNoNotifiers
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = defaultDedupTTL
	}
	if cfg.DedupSize <= 0 {
		cfg.DedupSize = defaultDedupSize
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &implUseCase{
		l:         l,
		plans:     plans,
		notifiers: notifiers,
		sent:      expirable.NewLRU[string, struct{}](cfg.DedupSize, nil, cfg.DedupTTL),
		cfg:       cfg,
		now:       time.Now,
	}, nil
}
