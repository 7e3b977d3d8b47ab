// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	requestIDKey contextKey = "ctxutil.requestID"
	sessionIDKey contextKey = "ctxutil.sessionID"
	intentKey    contextKey = "ctxutil.intent"
)

// WithRequestID adds a request ID to the context for tracing.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and true if found, empty string and false otherwise.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// WithSessionID adds the Dialogflow session path to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID retrieves the session ID from the context.
// Returns the empty string if not set.
func GetSessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}

// WithIntent adds the intent display name being fulfilled to the context.
func WithIntent(ctx context.Context, intent string) context.Context {
	return context.WithValue(ctx, intentKey, intent)
}

// GetIntent retrieves the intent name from the context.
// Returns the empty string if not set.
func GetIntent(ctx context.Context) string {
	intent, _ := ctx.Value(intentKey).(string)
	return intent
}
