// Package bot maps Dialogflow intent names to the handlers that fulfill them.
package bot

import (
	"context"

	"github.com/garyellow/badgerchat-fulfillment/internal/fulfillment"
)

// Handler fulfills one intent.
type Handler interface {
	// Handle builds the reply for req. Errors carrying a user message
	// (see errors.WrappedError) are shown to the user as text.
	Handle(ctx context.Context, req *fulfillment.WebhookRequest) (*fulfillment.Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req *fulfillment.WebhookRequest) (*fulfillment.Response, error)

// Handle calls f(ctx, req).
func (f HandlerFunc) Handle(ctx context.Context, req *fulfillment.WebhookRequest) (*fulfillment.Response, error) {
	return f(ctx, req)
}
