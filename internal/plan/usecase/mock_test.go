package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"action-plan-assistant/internal/model"
	repo "action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/gcalendar"
	"action-plan-assistant/pkg/llmprovider"
)

// mockLogger discards everything.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator returns a fixed response or error.
type mockGenerator struct {
	text  string
	err   error
	calls int
	last  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  llmprovider.RoleAssistant,
			Parts: []llmprovider.Part{{Text: m.text}},
		},
	}, nil
}

// mockCalendar records created events and fails on the listed summaries.
type mockCalendar struct {
	events []gcalendar.AllDayEventRequest
	failOn int // fail the n-th call, 1-based; 0 never fails
}

func (m *mockCalendar) CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error) {
	m.events = append(m.events, req)
	if m.failOn == len(m.events) {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: fmt.Sprintf("evt-%d", len(m.events)), Summary: req.Summary, Date: req.Date}, nil
}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu      sync.Mutex
	plans   map[string]model.Plan
	seq     int
	failErr error
	// failUpdateOn fails the n-th UpdateStep call, 1-based; 0 never fails.
	failUpdateOn int
	updates      int
}

func newMemRepo() *memRepo {
	return &memRepo{plans: map[string]model.Plan{}}
}

func (r *memRepo) CreatePlan(ctx context.Context, opt repo.CreatePlanOptions) (model.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return model.Plan{}, r.failErr
	}
	r.seq++
	id := fmt.Sprintf("plan-%d", r.seq)
	steps := make([]model.Step, len(opt.Steps))
	for i, s := range opt.Steps {
		s.PlanID = id
		steps[i] = s
	}
	p := model.Plan{
		ID:        id,
		UserID:    opt.UserID,
		Idea:      opt.Idea,
		Title:     opt.Title,
		StartDate: opt.StartDate,
		MaxDays:   opt.MaxDays,
		Steps:     steps,
		CreatedAt: opt.CreatedAt,
		UpdatedAt: opt.CreatedAt,
	}
	r.plans[id] = p
	return p, nil
}

func (r *memRepo) GetPlan(ctx context.Context, opt repo.GetPlanOptions) (model.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[opt.ID]
	if !ok || (opt.UserID != "" && p.UserID != opt.UserID) {
		return model.Plan{}, nil
	}
	return clonePlan(p), nil
}

func (r *memRepo) ListPlans(ctx context.Context, opt repo.ListPlansOptions) ([]model.Plan, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []model.Plan
	for _, p := range r.plans {
		if opt.UserID == "" || p.UserID == opt.UserID {
			all = append(all, clonePlan(p))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if opt.Offset >= total {
		return []model.Plan{}, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > total {
		end = total
	}
	return all[opt.Offset:end], total, nil
}

func (r *memRepo) ListActivePlans(ctx context.Context) ([]model.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Plan
	for _, p := range r.plans {
		if !p.IsFinished() {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}

func (r *memRepo) DeletePlan(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

func (r *memRepo) UpdateStep(ctx context.Context, opt repo.UpdateStepOptions) (model.Step, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.failUpdateOn > 0 && r.updates == r.failUpdateOn {
		return model.Step{}, errors.New("update failed")
	}
	p, ok := r.plans[opt.PlanID]
	if !ok {
		return model.Step{}, nil
	}
	for i, s := range p.Steps {
		if s.Position != opt.Position {
			continue
		}
		s.Completed = opt.Completed
		s.CompletedAt = opt.CompletedAt
		s.Note = opt.Note
		p.Steps[i] = s
		p.UpdatedAt = opt.UpdatedAt
		r.plans[p.ID] = p
		return s, nil
	}
	return model.Step{}, nil
}

func clonePlan(p model.Plan) model.Plan {
	p.Steps = append([]model.Step(nil), p.Steps...)
	return p
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
