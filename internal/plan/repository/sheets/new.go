// Package sheets stores plans in a Google Sheets spreadsheet with one tab for
// plans and one for steps. Row 1 of each tab is a header. Deleted rows are
// cleared in place and skipped on read.
package sheets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/log"
)

const (
	plansSheet = "Plans"
	stepsSheet = "Steps"
	lastColumn = "H"
	firstRow   = 2
)

var (
	planHeader = []string{"id", "user_id", "idea", "title", "start_date", "max_days", "created_at", "updated_at"}
	stepHeader = []string{"plan_id", "position", "text", "difficulty", "due_date", "completed", "completed_at", "note"}
)

// Client is the subset of pkg/gsheets used by the store.
type Client interface {
	Read(ctx context.Context, rng string) ([][]string, error)
	Append(ctx context.Context, rng string, rows [][]string) (string, error)
	Update(ctx context.Context, rng string, rows [][]string) error
	Clear(ctx context.Context, rng string) error
	EnsureSheet(ctx context.Context, title string, header []string) error
}

type implRepository struct {
	client Client
	loc    *time.Location
	l      log.Logger
	// mu serializes read-modify-write cycles; the API has no row locking.
	mu sync.Mutex
}

// New creates a Sheets-backed Repository and makes sure both tabs exist.
func New(ctx context.Context, client Client, loc *time.Location, l log.Logger) (repository.Repository, error) {
	if client == nil {
		panic("plan/repository/sheets: client is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	r := &implRepository{client: client, loc: loc, l: l}

	for title, header := range map[string][]string{plansSheet: planHeader, stepsSheet: stepHeader} {
		if err := client.EnsureSheet(ctx, title, header); err != nil {
			r.l.Errorf(ctx, "%s %s: %v", r.dsn("New"), title, err)
			return nil, repository.ErrFailedToMigrate
		}
	}
	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/sheets.%s", method)
}

func tableRange(sheet string) string {
	return fmt.Sprintf("%s!A%d:%s", sheet, firstRow, lastColumn)
}

func appendRange(sheet string) string {
	return fmt.Sprintf("%s!A:%s", sheet, lastColumn)
}

// rowRange addresses the row at index i of a table read with tableRange.
func rowRange(sheet string, i int) string {
	n := i + firstRow
	return fmt.Sprintf("%s!A%d:%s%d", sheet, n, lastColumn, n)
}
