package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"action-plan-assistant/config"
	_ "action-plan-assistant/docs" // Swagger docs
	"action-plan-assistant/internal/httpserver"
	"action-plan-assistant/internal/middleware"
	planUC "action-plan-assistant/internal/plan/usecase"
	"action-plan-assistant/internal/storage"
	"action-plan-assistant/pkg/deadline"
	"action-plan-assistant/pkg/gcalendar"
	"action-plan-assistant/pkg/llmprovider"
	"action-plan-assistant/pkg/log"
	"action-plan-assistant/pkg/scope"
)

// @title                      Action Plan Assistant API
// @description                Turns business ideas into step-by-step action plans with workload-aware deadlines.
// @version                    1
// @host                       localhost:8080
// @schemes                    http
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Action Plan Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "API stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return fmt.Errorf("scheduler timezone: %w", err)
	}

	// 3. Plan store
	store, err := storage.Open(ctx, cfg, loc, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	// 4. LLM providers with fallback
	llm, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		return err
	}

	// 5. Deadline scheduler
	allocator, err := deadline.NewAllocator(deadline.Config{
		InitialOffsetDays: cfg.Scheduler.InitialOffsetDays,
		MinTaskDays:       cfg.Scheduler.MinTaskDays,
		MaxTaskDays:       cfg.Scheduler.MaxTaskDays,
	})
	if err != nil {
		return err
	}

	// 6. Google Calendar (optional)
	var opts []planUC.Option
	if cfg.GoogleCalendar.Enabled {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			opts = append(opts, planUC.WithCalendar(calendarClient))
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	uc := planUC.New(logger, store.Repo, llm, allocator, planUC.Config{
		MaxSteps:    cfg.Planner.MaxSteps,
		Language:    cfg.Planner.Language,
		Temperature: cfg.Planner.Temperature,
		MaxTokens:   cfg.Planner.MaxTokens,
		MaxDays:     cfg.Scheduler.MaxDays,
		Location:    loc,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	}, opts...)

	// 7. HTTP Server
	mw := middleware.New(logger, scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL), cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORS:            cfg.CORS,
		Readiness:       store.Ping,
		PlanUseCase:     uc,
		Middleware:      mw,
		Location:        loc,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}
