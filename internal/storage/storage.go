// Package storage opens the plan store selected by database.driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"action-plan-assistant/config"
	"action-plan-assistant/internal/plan/repository"
	"action-plan-assistant/internal/plan/repository/sheets"
	"action-plan-assistant/internal/plan/repository/sqlstore"
	"action-plan-assistant/pkg/gsheets"
	"action-plan-assistant/pkg/log"
)

const DriverSheets = "sheets"

// Store is an opened plan repository.
type Store struct {
	Repo repository.Repository
	db   *sql.DB
}

// Open connects to the configured backend and prepares its schema.
func Open(ctx context.Context, cfg *config.Config, loc *time.Location, l log.Logger) (*Store, error) {
	switch cfg.Database.Driver {
	case DriverSheets:
		client, err := gsheets.NewClientFromCredentialsFile(ctx,
			cfg.GoogleSheets.CredentialsPath, cfg.GoogleSheets.TokenPath, cfg.GoogleSheets.SpreadsheetID)
		if err != nil {
			return nil, fmt.Errorf("storage: google sheets: %w", err)
		}
		repo, err := sheets.New(ctx, client, loc, l)
		if err != nil {
			return nil, err
		}
		l.Infof(ctx, "Plan store: google sheets %s", cfg.GoogleSheets.SpreadsheetID)
		return &Store{Repo: repo}, nil

	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
		db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxOpenConns)
		if err != nil {
			return nil, err
		}
		repo, err := sqlstore.New(ctx, db, cfg.Database.Driver, loc, l)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		l.Infof(ctx, "Plan store: %s", cfg.Database.Driver)
		return &Store{Repo: repo, db: db}, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Database.Driver)
	}
}

// Ping checks the SQL connection. The sheets backend has nothing to ping.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
