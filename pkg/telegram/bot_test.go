package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-planner/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastWebhook telegram.SetWebhookRequest
	var lastMessage telegram.SendMessageRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			json.NewDecoder(r.Body).Decode(&lastWebhook)
			if lastWebhook.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if lastWebhook.URL == "cause_not_ok" {
				w.Write([]byte(`{"ok": false, "description": "not allowed"}`))
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			json.NewDecoder(r.Body).Decode(&lastMessage)
			if lastMessage.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if lastMessage.Text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastWebhook.SecretToken != "s3cret" || len(lastWebhook.AllowedUpdates) != 1 {
			t.Errorf("unexpected webhook payload: %+v", lastWebhook)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook Not OK", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_not_ok", "")
		if err == nil || !strings.Contains(err.Error(), "not allowed") {
			t.Fatalf("expected not ok error, got: %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastMessage.ChatID != 12345 || lastMessage.ParseMode != "" || !lastMessage.DisableWebPagePreview {
			t.Errorf("unexpected message payload: %+v", lastMessage)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 12345, "<b>Hello</b>", "HTML"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastMessage.ParseMode != "HTML" {
			t.Errorf("expected HTML parse mode, got %q", lastMessage.ParseMode)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "cause_500"); err == nil {
			t.Fatalf("expected http error")
		}
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 12345, "Hello"); err == nil {
			t.Error("expected context error")
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		if err := badBot.SendMessage(ctx, 12345, "fail"); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
