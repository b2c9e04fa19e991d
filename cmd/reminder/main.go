package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"action-plan-assistant/config"
	"action-plan-assistant/internal/reminder"
	"action-plan-assistant/internal/reminder/notifier"
	reminderUC "action-plan-assistant/internal/reminder/usecase"
	"action-plan-assistant/internal/storage"
	"action-plan-assistant/pkg/log"
	"action-plan-assistant/pkg/telegram"
	"action-plan-assistant/pkg/webhook"
)

// main runs the alert worker: it scans active plans on an interval and notifies about
// overdue and due-today steps.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Build notifiers from config
//  3. Run until SIGINT/SIGTERM
//
// Pass -once to scan a single time and exit (for cron).
func main() {
	once, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.Reminder.Enabled {
		logger.Warn(ctx, "Reminder worker disabled (reminder.enabled=false)")
		return
	}

	if err := run(ctx, cfg, logger, once); err != nil {
		logger.Errorf(ctx, "Reminder worker stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Reminder worker stopped gracefully")
}

// parseFlags reads the worker flags; -once, --once and -once=true all work.
func parseFlags(args []string) (once bool, err error) {
	fs := flag.NewFlagSet("reminder", flag.ContinueOnError)
	fs.BoolVar(&once, "once", false, "scan a single time and exit")
	err = fs.Parse(args)
	return once, err
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger, once bool) error {
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return fmt.Errorf("scheduler timezone: %w", err)
	}

	store, err := storage.Open(ctx, cfg, loc, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	notifiers, err := buildNotifiers(cfg)
	if err != nil {
		return err
	}
	for _, n := range notifiers {
		logger.Infof(ctx, "Notifier enabled: %s", n.Name())
	}

	uc, err := reminderUC.New(logger, store.Repo, notifiers, reminderUC.Config{
		Interval:  cfg.Reminder.Interval,
		DedupTTL:  cfg.Reminder.DedupTTL,
		DedupSize: cfg.Reminder.DedupSize,
		Location:  loc,
	})
	if err != nil {
		return err
	}

	if once {
		_, err := uc.Scan(ctx)
		return err
	}
	return uc.Run(ctx)
}

func buildNotifiers(cfg *config.Config) ([]reminder.Notifier, error) {
	var notifiers []reminder.Notifier

	if cfg.Telegram.BotToken != "" {
		bot, err := telegram.NewBot(cfg.Telegram.BotToken)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, notifier.NewTelegram(bot, cfg.Telegram.ChatID, cfg.Planner.Language))
	}

	if cfg.NotifyWebhook.URL != "" {
		sender, err := webhook.New(webhook.Config{
			URL:     cfg.NotifyWebhook.URL,
			Secret:  cfg.NotifyWebhook.Secret,
			Timeout: cfg.NotifyWebhook.Timeout,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, notifier.NewWebhook(sender))
	}

	return notifiers, nil
}
