package sqlstore

import (
	"context"

	"action-plan-assistant/internal/plan/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		idea       TEXT NOT NULL,
		title      TEXT NOT NULL,
		start_date TEXT NOT NULL,
		max_days   INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_user_created ON plans (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS plan_steps (
		plan_id      TEXT NOT NULL REFERENCES plans (id),
		position     INTEGER NOT NULL,
		text         TEXT NOT NULL,
		difficulty   DOUBLE PRECISION NOT NULL,
		due_date     TEXT NOT NULL,
		completed    BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TEXT,
		note         TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (plan_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_steps_pending ON plan_steps (completed, plan_id)`,
}

func (r *implRepository) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("migrate"), err)
			return repository.ErrFailedToMigrate
		}
	}
	return nil
}
