package bot

import (
	"context"
	"fmt"

	domerrors "github.com/garyellow/badgerchat-fulfillment/internal/errors"
	"github.com/garyellow/badgerchat-fulfillment/internal/fulfillment"
)

// Registry is the intent table. It is populated once at startup and read-only afterwards.
type Registry struct {
	handlers map[string]Handler
	order    []string
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register binds an intent display name to h. Names are matched exactly.
// Panics on an empty name, a nil handler, or a duplicate registration.
func (r *Registry) Register(intent string, h Handler) {
	if intent == "" {
		panic("bot: empty intent name")
	}
	if h == nil {
		panic("bot: nil handler for intent " + intent)
	}
	if _, dup := r.handlers[intent]; dup {
		panic("bot: intent registered twice: " + intent)
	}
	r.handlers[intent] = h
	r.order = append(r.order, intent)
}

// Lookup returns the handler for intent.
func (r *Registry) Lookup(intent string) (Handler, bool) {
	h, ok := r.handlers[intent]
	return h, ok
}

// Intents returns the registered names in registration order.
func (r *Registry) Intents() []string {
	return append([]string(nil), r.order...)
}

// Dispatch runs the handler registered for req's intent.
// Unknown or empty names return an error matching ErrIntentNotFound.
func (r *Registry) Dispatch(ctx context.Context, req *fulfillment.WebhookRequest) (*fulfillment.Response, error) {
	name := req.IntentName()
	h, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domerrors.ErrIntentNotFound, name)
	}
	return h.Handle(ctx, req)
}
