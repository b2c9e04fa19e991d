package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/pkg/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type implRepository struct {
	db     *sql.DB
	driver string
	loc    *time.Location
	l      log.Logger
}

// Open connects to driver/dsn and verifies the connection.
// SQLite allows a single writer, so its pool is capped at one connection.
func Open(ctx context.Context, driver, dsn string, maxOpenConns int) (*sql.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		maxOpenConns = 1
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", driver, err)
	}
	return db, nil
}

// New creates a SQL-backed Repository for the plan domain and prepares its schema.
// Dates are read back as midnight in loc.
func New(ctx context.Context, db *sql.DB, driver string, loc *time.Location, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("plan/repository/sqlstore: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	r := &implRepository{db: db, driver: driver, loc: loc, l: l}
	if err := r.migrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/sqlstore.%s", method)
}
