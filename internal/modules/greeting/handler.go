// Package greeting implements the HelloWorld intent used to verify the
// fulfillment wiring end to end.
package greeting

import (
	"context"

	"github.com/garyellow/badgerchat-fulfillment/internal/bot"
	"github.com/garyellow/badgerchat-fulfillment/internal/fulfillment"
	"github.com/garyellow/badgerchat-fulfillment/internal/logger"
)

// Module constants
const (
	ModuleName = "greeting"

	IntentHelloWorld = "HelloWorld"

	helloText = "You will see this if you trigger an intent named HelloWorld"
)

// Handler answers the greeting intent.
type Handler struct {
	logger *logger.Logger
}

// NewHandler creates a new greeting handler.
func NewHandler(log *logger.Logger) *Handler {
	return &Handler{logger: log}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// Register binds the module's intents.
func (h *Handler) Register(r *bot.Registry) {
	r.Register(IntentHelloWorld, bot.HandlerFunc(h.HandleHelloWorld))
}

// HandleHelloWorld always succeeds with a fixed text.
func (h *Handler) HandleHelloWorld(ctx context.Context, _ *fulfillment.WebhookRequest) (*fulfillment.Response, error) {
	h.logger.WithModule(ModuleName).DebugContext(ctx, "Handling hello world")
	return fulfillment.NewTextResponse(helloText), nil
}
