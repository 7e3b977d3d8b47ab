package sentry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

func TestInitialize_EmptyDSN(t *testing.T) {
	// Cannot use t.Parallel() as Sentry uses global state
	sentry.CurrentHub().BindClient(nil)

	if err := Initialize(Config{DSN: ""}); err != nil {
		t.Errorf("Expected nil error for empty DSN, got %v", err)
	}
	if IsEnabled() {
		t.Error("Expected IsEnabled() to return false when DSN is empty")
	}
}

func TestInitialize_InvalidDSN(t *testing.T) {
	// Cannot use t.Parallel() as Sentry uses global state
	if err := Initialize(Config{DSN: "not a dsn"}); err == nil {
		t.Error("Expected error for malformed DSN")
	}
}

func TestInitialize_ValidConfig(t *testing.T) {
	// Cannot use t.Parallel() as Sentry uses global state
	t.Cleanup(func() { sentry.CurrentHub().BindClient(nil) })

	err := Initialize(Config{
		DSN:         "https://public@o0.ingest.sentry.io/1",
		Environment: "test",
		Release:     "v0.0.0-test",
	})
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if !IsEnabled() {
		t.Error("Expected IsEnabled() to return true after initialization")
	}

	Flush(time.Second)
}

func TestScrubEvent(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{Headers: map[string]string{
		"X-CS571-ID":    "bid_secret",
		"authorization": "Basic abc",
		"Content-Type":  "application/json",
	}}}

	got := scrubEvent(event, nil)
	if got.Request.Headers["X-CS571-ID"] != "[Filtered]" {
		t.Errorf("api key header not scrubbed: %v", got.Request.Headers)
	}
	if got.Request.Headers["authorization"] != "[Filtered]" {
		t.Errorf("authorization header not scrubbed: %v", got.Request.Headers)
	}
	if got.Request.Headers["Content-Type"] != "application/json" {
		t.Errorf("unrelated header changed: %v", got.Request.Headers)
	}

	if scrubEvent(nil, nil) != nil {
		t.Error("expected nil event to pass through")
	}
}

func TestCaptureRequestError_Disabled(t *testing.T) {
	// Cannot use t.Parallel() as Sentry uses global state
	sentry.CurrentHub().BindClient(nil)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	// Must not panic without a client or a request hub.
	CaptureRequestError(c, errors.New("boom"), map[string]string{"intent": "HelloWorld"})
	CaptureRequestError(c, nil, nil)
}
