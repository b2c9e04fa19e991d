package reminder

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Scan evaluates every pending step once and sends the alerts that are due.
	Scan(ctx context.Context) (ScanOutput, error)
	// Run scans on every tick until ctx is cancelled.
	Run(ctx context.Context) error
}

// Notifier delivers one alert to a channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, alert Alert) error
}
