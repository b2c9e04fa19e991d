package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"action-plan-assistant/internal/model"
	repo "action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

var planStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return planStart.AddDate(0, 0, n)
}

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:", 0)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r, err := New(ctx, db, DriverSQLite, time.UTC, &mockLogger{})
	require.NoError(t, err)
	return r
}

func samplePlan(userID string, createdAt time.Time) repo.CreatePlanOptions {
	return repo.CreatePlanOptions{
		UserID:    userID,
		Idea:      "Open a coffee shop",
		Title:     "Coffee shop launch",
		StartDate: planStart,
		MaxDays:   28,
		CreatedAt: createdAt,
		Steps: []model.Step{
			{Position: 1, Text: "Research the market", Difficulty: 2, DueDate: day(9)},
			{Position: 2, Text: "Build the prototype", Difficulty: 3.5, DueDate: day(16)},
		},
	}
}

func TestCreateAndGetPlan(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	created := time.Date(2024, 1, 1, 9, 30, 0, 123, time.UTC)

	p, err := r.CreatePlan(ctx, samplePlan("u1", created))
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, p.ID, p.Steps[0].PlanID)

	got, err := r.GetPlan(ctx, repo.GetPlanOptions{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Coffee shop launch", got.Title)
	assert.True(t, got.StartDate.Equal(planStart))
	assert.True(t, got.CreatedAt.Equal(created))
	require.Len(t, got.Steps, 2)
	assert.Equal(t, 1, got.Steps[0].Position)
	assert.Equal(t, 3.5, got.Steps[1].Difficulty)
	assert.True(t, got.Steps[1].DueDate.Equal(day(16)))
	assert.False(t, got.Steps[0].Completed)
	assert.Nil(t, got.Steps[0].CompletedAt)
}

func TestGetPlan_NotFoundReturnsZero(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	p, err := r.CreatePlan(ctx, samplePlan("u1", time.Now()))
	require.NoError(t, err)

	tests := []struct {
		name string
		opt  repo.GetPlanOptions
	}{
		{name: "unknown id", opt: repo.GetPlanOptions{ID: "missing"}},
		{name: "other owner", opt: repo.GetPlanOptions{ID: p.ID, UserID: "u2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetPlan(ctx, tt.opt)
			require.NoError(t, err)
			assert.Empty(t, got.ID)
		})
	}
}

func TestListPlans(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	for i := 0; i < 3; i++ {
		_, err := r.CreatePlan(ctx, samplePlan("u1", planStart.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := r.CreatePlan(ctx, samplePlan("u2", planStart))
	require.NoError(t, err)

	page, total, err := r.ListPlans(ctx, repo.ListPlansOptions{UserID: "u1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.True(t, page[0].CreatedAt.After(page[1].CreatedAt), "newest first")
	assert.Len(t, page[0].Steps, 2)

	rest, _, err := r.ListPlans(ctx, repo.ListPlansOptions{UserID: "u1", Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	none, total, err := r.ListPlans(ctx, repo.ListPlansOptions{UserID: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, none)
}

func TestUpdateStep(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	p, err := r.CreatePlan(ctx, samplePlan("u1", planStart))
	require.NoError(t, err)

	doneAt := time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC)
	step, err := r.UpdateStep(ctx, repo.UpdateStepOptions{
		PlanID:      p.ID,
		Position:    1,
		Completed:   true,
		CompletedAt: &doneAt,
		Note:        "talked to 5 cafés",
		UpdatedAt:   doneAt,
	})
	require.NoError(t, err)
	assert.True(t, step.Completed)
	require.NotNil(t, step.CompletedAt)
	assert.True(t, step.CompletedAt.Equal(doneAt))
	assert.Equal(t, "talked to 5 cafés", step.Note)
	assert.True(t, step.DueDate.Equal(day(9)), "due date is never rewritten")

	got, err := r.GetPlan(ctx, repo.GetPlanOptions{ID: p.ID})
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.Equal(doneAt))
	assert.True(t, got.Steps[0].Completed)

	missing, err := r.UpdateStep(ctx, repo.UpdateStepOptions{PlanID: p.ID, Position: 99, UpdatedAt: doneAt})
	require.NoError(t, err)
	assert.Empty(t, missing.PlanID)
}

func TestListActivePlans(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	active, err := r.CreatePlan(ctx, samplePlan("u1", planStart))
	require.NoError(t, err)
	done, err := r.CreatePlan(ctx, samplePlan("u2", planStart.Add(time.Hour)))
	require.NoError(t, err)

	for _, pos := range []int{1, 2} {
		_, err := r.UpdateStep(ctx, repo.UpdateStepOptions{PlanID: done.ID, Position: pos, Completed: true, UpdatedAt: planStart})
		require.NoError(t, err)
	}

	plans, err := r.ListActivePlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, active.ID, plans[0].ID)
	assert.Len(t, plans[0].Steps, 2)
}

func TestDeletePlan(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	p, err := r.CreatePlan(ctx, samplePlan("u1", planStart))
	require.NoError(t, err)

	require.NoError(t, r.DeletePlan(ctx, p.ID))

	got, err := r.GetPlan(ctx, repo.GetPlanOptions{ID: p.ID})
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	active, err := r.ListActivePlans(ctx)
	require.NoError(t, err)
	assert.Empty(t, active, "steps are removed with the plan")
}

func TestDatesReadInStoreLocation(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:", 0)
	require.NoError(t, err)
	defer db.Close()
	r, err := New(ctx, db, DriverSQLite, bogota, &mockLogger{})
	require.NoError(t, err)

	opt := samplePlan("u1", planStart)
	opt.StartDate = time.Date(2024, 3, 1, 0, 0, 0, 0, bogota)
	opt.Steps[0].DueDate = time.Date(2024, 3, 10, 0, 0, 0, 0, bogota)
	p, err := r.CreatePlan(ctx, opt)
	require.NoError(t, err)

	got, err := r.GetPlan(ctx, repo.GetPlanOptions{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, bogota, got.StartDate.Location())
	assert.True(t, got.Steps[0].DueDate.Equal(opt.Steps[0].DueDate))
}

func TestRebind(t *testing.T) {
	pg := &implRepository{driver: DriverPostgres}
	lite := &implRepository{driver: DriverSQLite}
	q := `SELECT 1 FROM t WHERE a = ? AND b IN (?, ?)`

	assert.Equal(t, `SELECT 1 FROM t WHERE a = $1 AND b IN ($2, $3)`, pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn", 0)
	assert.Error(t, err)
}
