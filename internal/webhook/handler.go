// Package webhook adapts Dialogflow fulfillment requests arriving over HTTP
// to the intent registry and renders the handler result back as JSON.
package webhook

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/garyellow/badgerchat-fulfillment/internal/bot"
	"github.com/garyellow/badgerchat-fulfillment/internal/ctxutil"
	domerrors "github.com/garyellow/badgerchat-fulfillment/internal/errors"
	"github.com/garyellow/badgerchat-fulfillment/internal/fulfillment"
	"github.com/garyellow/badgerchat-fulfillment/internal/logger"
	"github.com/garyellow/badgerchat-fulfillment/internal/metrics"
	"github.com/garyellow/badgerchat-fulfillment/internal/sentry"
	"github.com/gin-gonic/gin"
)

// FallbackMessage is sent when a handler fails without a user-facing message.
const FallbackMessage = "Sorry, something went wrong on my end. Please try again."

// intentUnknown is the metrics label for unregistered intents; raw names
// would give callers control over label cardinality.
const intentUnknown = "unknown"

// Handler handles Dialogflow fulfillment webhooks
type Handler struct {
	registry *bot.Registry
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	Registry *bot.Registry
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
}

// NewHandler creates a new webhook handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		registry: cfg.Registry,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
}

// Handle is the Gin handler for the fulfillment endpoint
func (h *Handler) Handle(c *gin.Context) {
	start := time.Now()

	var req fulfillment.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		err = fmt.Errorf("%w: %w", domerrors.ErrInvalidInput, err)
		h.logger.WithError(err).WarnContext(c.Request.Context(), "Failed to parse webhook request")
		h.metrics.RecordFulfillmentError(domerrors.Kind(err))
		h.metrics.RecordWebhook(intentUnknown, "bad_request", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad request!"})
		return
	}

	intent := req.IntentName()
	ctx := c.Request.Context()
	ctx = ctxutil.WithSessionID(ctx, req.Session)
	ctx = ctxutil.WithIntent(ctx, intent)
	c.Request = c.Request.WithContext(ctx)

	resp, err := h.registry.Dispatch(ctx, &req)
	elapsed := time.Since(start).Seconds()

	if errors.Is(err, domerrors.ErrIntentNotFound) {
		h.logger.WarnContext(ctx, "Could not find intent in intent map", "intent", intent)
		h.metrics.RecordWebhook(intentUnknown, "not_found", elapsed)
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found!"})
		return
	}

	if err != nil {
		kind := domerrors.Kind(err)
		entry := h.logger.WithError(err).WithField("kind", kind)
		if domerrors.IsReportable(err) {
			entry.ErrorContext(ctx, "Fulfillment failed")
			sentry.CaptureRequestError(c, err, map[string]string{"intent": intent, "kind": kind})
		} else {
			entry.InfoContext(ctx, "Fulfillment answered with guidance")
		}
		h.metrics.RecordFulfillmentError(kind)
		h.metrics.RecordWebhook(intent, "error", elapsed)
		c.JSON(http.StatusOK, fulfillment.NewTextResponse(domerrors.GetUserMessage(err, FallbackMessage)))
		return
	}

	if resp == nil {
		resp = fulfillment.NewResponse()
	}
	h.metrics.RecordWebhook(intent, "success", elapsed)
	h.logger.DebugContext(ctx, "Fulfillment sent", "messages", len(resp.FulfillmentMessages))
	c.JSON(http.StatusOK, resp)
}
