package usecase

import (
	"context"
	"time"
)

// Run scans immediately and then on every interval until ctx is cancelled.
func (uc *implUseCase) Run(ctx context.Context) error {
	uc.l.Infof(ctx, "reminder.Run: interval=%s notifiers=%d", uc.cfg.Interval, len(uc.notifiers))

	ticker := time.NewTicker(uc.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := uc.Scan(ctx); err != nil {
			uc.l.Errorf(ctx, "reminder.Run: %v", err)
		}

		select {
		case <-ctx.Done():
			uc.l.Info(ctx, "reminder.Run: stopped")
			return nil
		case <-ticker.C:
		}
	}
}
