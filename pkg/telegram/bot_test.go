package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"action-plan-assistant/pkg/telegram"
)

func TestBot(t *testing.T) {
	var last telegram.SendMessageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&last)
		switch last.Text {
		case "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}`))
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		case "cause_not_ok":
			w.Write([]byte(`{"ok": false, "description": "flood"}`))
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	defer ts.Close()

	bot, err := telegram.NewBot("test-token")
	if err != nil {
		t.Fatalf("NewBot() error: %v", err)
	}
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last.ChatID != 12345 || last.ParseMode != "" || !last.DisableWebPagePreview {
			t.Errorf("payload = %+v", last)
		}
	})

	t.Run("SendHTML sets parse mode", func(t *testing.T) {
		if err := bot.SendHTML(ctx, 1, "<b>Hi</b>"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last.ParseMode != telegram.ParseModeHTML {
			t.Errorf("ParseMode = %q", last.ParseMode)
		}
	})

	t.Run("API error carries description", func(t *testing.T) {
		err := bot.SendMessage(ctx, 1, "cause_error")
		var apiErr *telegram.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusBadRequest || !strings.Contains(apiErr.Description, "chat not found") {
			t.Errorf("apiErr = %+v", apiErr)
		}
	})

	t.Run("HTTP failure without body", func(t *testing.T) {
		var apiErr *telegram.APIError
		if err := bot.SendMessage(ctx, 1, "cause_500"); !errors.As(err, &apiErr) || apiErr.StatusCode != 500 {
			t.Fatalf("expected 500 APIError, got %v", err)
		}
	})

	t.Run("OK status with ok=false", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 1, "cause_not_ok"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 1, "Hello"); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestNewBot_MissingToken(t *testing.T) {
	if _, err := telegram.NewBot(""); !errors.Is(err, telegram.ErrMissingToken) {
		t.Errorf("error = %v, want ErrMissingToken", err)
	}
}
