package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"action-plan-assistant/config"
	"action-plan-assistant/internal/middleware"
	"action-plan-assistant/internal/plan"
	"action-plan-assistant/pkg/scope"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// stubUseCase is never reached by these tests.
type stubUseCase struct {
	plan.UseCase
}

func newTestServer(t *testing.T, ready ReadinessFunc) *HTTPServer {
	t.Helper()
	mw := middleware.New(mockLogger{}, scope.New("0123456789abcdef", "", time.Hour), config.RateLimitConfig{
		RequestsPerMinute: 60, Burst: 5, CacheSize: 10, TTL: time.Minute,
	})
	srv, err := New(mockLogger{}, Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		CORS:        config.CORSConfig{AllowedOrigins: []string{"https://app.example.com"}},
		Readiness:   ready,
		PlanUseCase: stubUseCase{},
		Middleware:  mw,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1, PlanUseCase: stubUseCase{}}},
		{name: "missing port", cfg: Config{Mode: "test", PlanUseCase: stubUseCase{}}},
		{name: "missing use case", cfg: Config{Mode: "test", Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(mockLogger{}, tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("GET %s has no request id", path)
		}
	}
}

func TestReadyCheck_Unavailable(t *testing.T) {
	srv := newTestServer(t, func(ctx context.Context) error { return errors.New("db down") })
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready = %d, want 503", w.Code)
	}
}

func TestPlanRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/v1/plans = %d, want 401", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/plans", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/plans", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin allowed: %q", got)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.port = 0 // ":0" picks a free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
