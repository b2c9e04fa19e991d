package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"action-plan-assistant/config"
	"action-plan-assistant/internal/middleware"
	"action-plan-assistant/internal/plan"
	"action-plan-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// ReadinessFunc reports whether a dependency can serve traffic.
type ReadinessFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	handler         http.Handler
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	cors            config.CORSConfig
	readiness       ReadinessFunc

	// Plan domain
	planUC     plan.UseCase
	middleware middleware.Middleware
	location   *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	CORS            config.CORSConfig
	// Readiness is checked by /ready. Nil means always ready.
	Readiness ReadinessFunc

	// Plan domain
	PlanUseCase plan.UseCase
	Middleware  middleware.Middleware
	// Location interprets dates sent by clients.
	Location *time.Location
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		cors:            cfg.CORS,
		readiness:       cfg.Readiness,
		planUC:          cfg.PlanUseCase,
		middleware:      cfg.Middleware,
		location:        cfg.Location,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	srv.handler = srv.withCORS(srv.gin)

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.planUC == nil {
		return errors.New("plan use case is required")
	}
	return nil
}

// Handler returns the root handler, CORS included.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.handler
}
