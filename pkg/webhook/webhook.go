// Package webhook delivers signed JSON notifications to an HTTP endpoint.
// The body is signed with HMAC-SHA256 and sent as "sha256=<hex>" in SignatureHeader.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

const (
	SignatureHeader = "X-Signature-256"
	EventHeader     = "X-Event-Type"

	defaultTimeout  = 10 * time.Second
	defaultAttempts = 3
	userAgent       = "action-plan-assistant-webhook/1.0"
)

var (
	ErrMissingURL       = errors.New("webhook: url is required")
	ErrInvalidSignature = errors.New("webhook: signature verification failed")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.StatusCode)
}

// Config configures a Notifier.
type Config struct {
	URL          string
	Secret       string
	Timeout      time.Duration
	MaxAttempts  int
	InitialDelay time.Duration
	HTTPClient   *http.Client
}

// Payload is the JSON body sent to the endpoint.
type Payload struct {
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Notifier posts payloads to one endpoint with retries.
type Notifier struct {
	url    string
	secret string
	client *http.Client
	policy retry.Config
}

// New validates cfg and builds a Notifier.
func New(cfg Config) (*Notifier, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultAttempts
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Notifier{
		url:    cfg.URL,
		secret: cfg.Secret,
		client: client,
		policy: retry.Config{
			MaxAttempts:   cfg.MaxAttempts,
			InitialDelay:  cfg.InitialDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}, nil
}

// Send marshals data under eventType and delivers it, retrying failed attempts.
func (n *Notifier) Send(ctx context.Context, eventType string, data any, at time.Time) error {
	body, err := json.Marshal(Payload{EventType: eventType, Timestamp: at.UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	r := retry.New[struct{}](n.policy)
	_, err = r.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, n.post(ctx, eventType, body)
	})
	return err
}

func (n *Notifier) post(ctx context.Context, eventType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(EventHeader, eventType)
	if n.secret != "" {
		req.Header.Set(SignatureHeader, Sign(body, n.secret))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// Sign computes the "sha256=<hex>" HMAC of payload.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signature produced by Sign in constant time.
func Verify(payload []byte, signature, secret string) error {
	sigHex, ok := strings.CutPrefix(signature, "sha256=")
	if !ok {
		return fmt.Errorf("%w: invalid signature format", ErrInvalidSignature)
	}
	expected, err := hex.DecodeString(sigHex)
	if err != nil {
		return fmt.Errorf("%w: invalid hex encoding", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	if !hmac.Equal(expected, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}
