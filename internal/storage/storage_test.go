package storage_test

import (
	"context"
	"testing"
	"time"

	"action-plan-assistant/config"
	"action-plan-assistant/internal/model"
	"action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/internal/storage"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestOpen_SQLiteMemory(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}}

	store, err := storage.Open(ctx, cfg, time.UTC, nopLogger{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	p, err := store.Repo.CreatePlan(ctx, repository.CreatePlanOptions{
		UserID:    "u-1",
		Idea:      "idea",
		Title:     "title",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxDays:   28,
		Steps:     []model.Step{{Position: 1, Text: "step", Difficulty: 1, DueDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)}},
		CreatedAt: time.Now(),
	})
	if err != nil || p.ID == "" {
		t.Fatalf("CreatePlan() = %+v, %v", p, err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mongo"}}
	if _, err := storage.Open(context.Background(), cfg, time.UTC, nopLogger{}); err == nil {
		t.Error("expected an error")
	}
}
