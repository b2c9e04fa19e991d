package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	mu        sync.Mutex
	name      string
	model     string
	failures  int // fail this many calls before succeeding; -1 fails forever
	delay     time.Duration
	empty     bool // answer with no text
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.callCount++
	n := m.callCount
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failures < 0 || n <= m.failures {
		return nil, errors.New("mock provider error")
	}
	if m.empty {
		return &Response{Content: Message{Role: RoleAssistant}, ProviderName: m.name}, nil
	}
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: "hello from " + m.name}}},
		ProviderName: m.name,
		ModelName:    m.model,
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return NewTextRequest("", "Hello")
}

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name          string
		primary       *mockProvider
		secondary     *mockProvider
		fallback      bool
		wantErr       error
		wantProvider  string
		wantPrimary   int
		wantSecondary int
		wantInfo      int
		wantWarn      int
	}{
		{
			name:         "primary succeeds first time",
			primary:      &mockProvider{name: "primary", model: "p-model"},
			secondary:    &mockProvider{name: "secondary", model: "s-model"},
			fallback:     true,
			wantProvider: "primary",
			wantPrimary:  1,
			wantInfo:     1,
		},
		{
			name:         "primary recovers on retry",
			primary:      &mockProvider{name: "primary", model: "p-model", failures: 1},
			secondary:    &mockProvider{name: "secondary", model: "s-model"},
			fallback:     true,
			wantProvider: "primary",
			wantPrimary:  2,
			wantInfo:     1,
		},
		{
			name:          "falls back to secondary",
			primary:       &mockProvider{name: "primary", model: "p-model", failures: -1},
			secondary:     &mockProvider{name: "secondary", model: "s-model"},
			fallback:      true,
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantInfo:      1,
			wantWarn:      1,
		},
		{
			name:          "all providers fail",
			primary:       &mockProvider{name: "primary", model: "p-model", failures: -1},
			secondary:     &mockProvider{name: "secondary", model: "s-model", failures: -1},
			fallback:      true,
			wantErr:       ErrAllProvidersFailed,
			wantPrimary:   2,
			wantSecondary: 2,
			wantWarn:      2,
		},
		{
			name:        "no fallback when disabled",
			primary:     &mockProvider{name: "primary", model: "p-model", failures: -1},
			secondary:   &mockProvider{name: "secondary", model: "s-model"},
			fallback:    false,
			wantErr:     ErrAllProvidersFailed,
			wantPrimary: 2,
			wantWarn:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			manager := NewManager([]Provider{tt.primary, tt.secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   2,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := manager.GenerateContent(context.Background(), helloRequest())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GenerateContent() error = %v, want %v", err, tt.wantErr)
				}
				if resp != nil {
					t.Errorf("GenerateContent() resp = %+v, want nil", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("GenerateContent() unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("ProviderName = %q, want %q", resp.ProviderName, tt.wantProvider)
				}
			}

			if got := tt.primary.calls(); got != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", got, tt.wantPrimary)
			}
			if got := tt.secondary.calls(); got != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", got, tt.wantSecondary)
			}
			if len(logger.infoMessages) != tt.wantInfo {
				t.Errorf("info logs = %d, want %d", len(logger.infoMessages), tt.wantInfo)
			}
			if len(logger.warnMessages) != tt.wantWarn {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarn)
			}
		})
	}
}

func TestGenerateContent_ProviderErrorIdentifiesProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p-model", failures: -1}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ProviderError in chain, got %v", err)
	}
	if perr.Provider != "primary" || perr.Model != "p-model" {
		t.Errorf("ProviderError = %+v, want primary/p-model", perr)
	}
}

func TestGenerateContent_EmptyResponseFallsBack(t *testing.T) {
	blank := &mockProvider{name: "blank", model: "b", empty: true}
	backup := &mockProvider{name: "backup", model: "k"}

	manager := NewManager([]Provider{blank, backup}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})
	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "backup" {
		t.Errorf("ProviderName = %q, want backup", resp.ProviderName)
	}
	if blank.calls() != 2 {
		t.Errorf("blank provider calls = %d, want 2 retries", blank.calls())
	}

	manager = NewManager([]Provider{blank}, &Config{RetryAttempts: 1}, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), helloRequest()); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("error = %v, want ErrEmptyResponse", err)
	}
}

func TestGenerateContent_InvalidInput(t *testing.T) {
	t.Run("no providers", func(t *testing.T) {
		manager := NewManager(nil, &Config{RetryAttempts: 3}, &mockLogger{})
		if _, err := manager.GenerateContent(context.Background(), helloRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("error = %v, want ErrNoProvidersConfigured", err)
		}
	})

	t.Run("empty request", func(t *testing.T) {
		p := &mockProvider{name: "primary"}
		manager := NewManager([]Provider{p}, &Config{RetryAttempts: 3}, &mockLogger{})
		if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
		if p.calls() != 0 {
			t.Errorf("provider called %d times for an empty request", p.calls())
		}
	})
}

func TestGenerateContent_ProviderTimeoutFallsBack(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "s", delay: time.Second}
	fast := &mockProvider{name: "fast", model: "f"}
	manager := NewManager([]Provider{slow, fast}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		ProviderTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "fast" {
		t.Errorf("ProviderName = %q, want fast", resp.ProviderName)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("slow provider was not cut off, took %v", elapsed)
	}
}

func TestGenerateContent_TotalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "s", delay: time.Second}
	other := &mockProvider{name: "other", model: "o", delay: time.Second}
	manager := NewManager([]Provider{slow, other}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 30 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("error = %v, want ErrAllProvidersFailed", err)
	}
	if other.calls() != 0 {
		t.Errorf("second provider should not run after the total timeout, got %d calls", other.calls())
	}
}
