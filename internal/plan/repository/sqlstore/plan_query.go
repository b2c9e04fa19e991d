package sqlstore

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/pkg/datemath"
)

const (
	planColumns = `id, user_id, idea, title, start_date, max_days, created_at, updated_at`
	stepColumns = `plan_id, position, text, difficulty, due_date, completed, completed_at, note`

	// Fixed width so that text order matches time order.
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// rebind rewrites ? placeholders to $n for postgres.
func (r *implRepository) rebind(query string) string {
	if r.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanPlan(row scanner) (model.Plan, error) {
	var (
		p                           model.Plan
		start, createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Idea, &p.Title, &start, &p.MaxDays, &createdAt, &updatedAt); err != nil {
		return model.Plan{}, err
	}

	var err error
	if p.StartDate, err = datemath.ParseDate(start, r.loc); err != nil {
		return model.Plan{}, err
	}
	if p.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
		return model.Plan{}, err
	}
	if p.UpdatedAt, err = time.Parse(timestampLayout, updatedAt); err != nil {
		return model.Plan{}, err
	}
	return p, nil
}

func (r *implRepository) scanStep(row scanner) (model.Step, error) {
	var (
		s           model.Step
		due         string
		completedAt sql.NullString
	)
	if err := row.Scan(&s.PlanID, &s.Position, &s.Text, &s.Difficulty, &due, &s.Completed, &completedAt, &s.Note); err != nil {
		return model.Step{}, err
	}

	var err error
	if s.DueDate, err = datemath.ParseDate(due, r.loc); err != nil {
		return model.Step{}, err
	}
	if completedAt.Valid && completedAt.String != "" {
		at, err := time.Parse(timestampLayout, completedAt.String)
		if err != nil {
			return model.Step{}, err
		}
		s.CompletedAt = &at
	}
	return s, nil
}

func nullableTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTimestamp(*t)
}
