// Package config provides centralized timeout constants for the application.
//
// Dialogflow ES waits at most 5 seconds for a fulfillment response before it
// falls back to the agent's static reply, so everything on the request path
// is tuned to answer well inside that window when the message service is healthy.
package config

import "time"

// HTTP server timeouts
const (
	// WebhookHTTPRead bounds reading a request. Dialogflow bodies are small.
	WebhookHTTPRead = 10 * time.Second

	// WebhookHTTPWrite must exceed the upstream timeout plus serialization.
	WebhookHTTPWrite = 15 * time.Second

	// WebhookHTTPIdle is the keep-alive idle timeout.
	WebhookHTTPIdle = 120 * time.Second
)

// Message service
const (
	// UpstreamRequest is the default bound on one message service call.
	UpstreamRequest = 8 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the default time allowed for in-flight requests
	// and log/error flushing on SIGINT or SIGTERM.
	GracefulShutdown = 15 * time.Second
)
