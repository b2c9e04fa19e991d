package deadline

import (
	"fmt"
	"math"
	"time"

	"action-plan-assistant/pkg/datemath"
)

// Allocator spreads a horizon over a sequence of difficulty scores. It is immutable and safe for
// concurrent use.
type Allocator struct {
	cfg Config
}

// NewAllocator validates cfg and returns an Allocator.
func NewAllocator(cfg Config) (*Allocator, error) {
	if cfg.InitialOffsetDays < 0 || cfg.MinTaskDays < 1 || cfg.MaxTaskDays < cfg.MinTaskDays {
		return nil, fmt.Errorf("%w: offset=%d min=%d max=%d",
			ErrInvalidConfig, cfg.InitialOffsetDays, cfg.MinTaskDays, cfg.MaxTaskDays)
	}
	return &Allocator{cfg: cfg}, nil
}

var defaultAllocator = &Allocator{cfg: DefaultConfig()}

// AllocateDeadlines runs Allocate with DefaultConfig.
func AllocateDeadlines(scores []float64, h Horizon) ([]time.Time, error) {
	return defaultAllocator.Allocate(scores, h)
}

// Config returns the bounds the allocator was built with.
func (a *Allocator) Config() Config {
	return a.cfg
}

// Allocate returns one due date per score, non-decreasing, each within
// [start+InitialOffsetDays, start+MaxDays]. Dates are midnight in the start date's location.
// The result depends only on the arguments, never on the current time.
func (a *Allocator) Allocate(scores []float64, h Horizon) ([]time.Time, error) {
	if len(scores) == 0 {
		return []time.Time{}, nil
	}
	if err := a.ValidateHorizon(h); err != nil {
		return nil, err
	}

	total := 0.0
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			return nil, fmt.Errorf("%w: scores[%d]=%v", ErrInvalidScore, i, s)
		}
		total += s
	}

	budget := float64(h.MaxDays - a.cfg.InitialOffsetDays)
	evenShare := 1 / float64(len(scores))

	deadlines := make([]time.Time, len(scores))
	cursor := a.cfg.InitialOffsetDays
	for i, s := range scores {
		share := evenShare
		if total > 0 {
			share = s / total
		}
		cursor += a.clampDays(int(math.Round(share * budget)))
		// Steps past the horizon collapse onto its last day. Rounding drift is not redistributed.
		if cursor > h.MaxDays {
			cursor = h.MaxDays
		}
		deadlines[i] = datemath.AddDays(h.StartDate, cursor)
	}
	return deadlines, nil
}

// ValidateHorizon reports whether h can hold at least one deadline under the allocator bounds.
func (a *Allocator) ValidateHorizon(h Horizon) error {
	if h.StartDate.IsZero() {
		return fmt.Errorf("%w: missing start date", ErrInvalidHorizon)
	}
	if h.MaxDays <= 0 || h.MaxDays < a.cfg.InitialOffsetDays {
		return fmt.Errorf("%w: max_days=%d initial_offset=%d",
			ErrInvalidHorizon, h.MaxDays, a.cfg.InitialOffsetDays)
	}
	return nil
}

func (a *Allocator) clampDays(days int) int {
	if days < a.cfg.MinTaskDays {
		return a.cfg.MinTaskDays
	}
	if days > a.cfg.MaxTaskDays {
		return a.cfg.MaxTaskDays
	}
	return days
}

// Schedule estimates every task and allocates its due date. Positions are 1-based in slice order.
func (a *Allocator) Schedule(tasks []string, h Horizon) ([]Deadline, error) {
	scores := make([]float64, len(tasks))
	for i, text := range tasks {
		scores[i] = EstimateDifficulty(text, i+1)
	}

	dates, err := a.Allocate(scores, h)
	if err != nil {
		return nil, err
	}

	out := make([]Deadline, len(tasks))
	for i, text := range tasks {
		out[i] = Deadline{
			Position:   i + 1,
			Text:       text,
			Difficulty: scores[i],
			DueDate:    dates[i],
		}
	}
	return out, nil
}

// Schedule runs Allocator.Schedule with DefaultConfig.
func Schedule(tasks []string, h Horizon) ([]Deadline, error) {
	return defaultAllocator.Schedule(tasks, h)
}
