package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/garyellow/badgerchat-fulfillment/internal/ctxutil"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log %q: %v", buf.String(), err)
	}
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("test message")

	entry := decodeLine(t, &buf)
	for _, field := range []string{"timestamp", "level", "message"} {
		if _, ok := entry[field]; !ok {
			t.Errorf("JSON log missing required field %q", field)
		}
	}
	if entry["message"] != "test message" {
		t.Errorf("message = %v, want %q", entry["message"], "test message")
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want %q", entry["level"], "info")
	}
}

func TestLogger_WarningLevelName(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("info", &buf).Warn("careful")

	if got := decodeLine(t, &buf)["level"]; got != "warning" {
		t.Errorf("level = %v, want %q", got, "warning")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %s", buf.String())
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.WithModule("chatroom").
		WithRequestID("req-123").
		WithError(errors.New("boom")).
		WithField("chatroom", "general").
		WithFields(map[string]any{"count": 3}).
		Debug("test message")

	entry := decodeLine(t, &buf)
	want := map[string]any{
		"module":     "chatroom",
		"request_id": "req-123",
		"error":      "boom",
		"chatroom":   "general",
		"count":      float64(3),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestLogger_ContextValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	ctx := ctxutil.WithRequestID(context.Background(), "ctx-req-456")
	ctx = ctxutil.WithIntent(ctx, "GetWhenPosted")
	log.InfoContext(ctx, "test message")

	entry := decodeLine(t, &buf)
	if entry["request_id"] != "ctx-req-456" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if entry["intent"] != "GetWhenPosted" {
		t.Errorf("intent = %v", entry["intent"])
	}
}

func TestLogger_ShutdownWithoutRemote(t *testing.T) {
	log := NewWithWriter("info", &bytes.Buffer{})
	if err := log.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
	// Derived loggers share the same (absent) remote sink.
	if err := log.WithModule("x").Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on derived logger error = %v, want nil", err)
	}
}
