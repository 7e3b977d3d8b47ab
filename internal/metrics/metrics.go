package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Webhook metrics
	WebhookRequestsTotal   *prometheus.CounterVec
	WebhookDurationSeconds *prometheus.HistogramVec

	// Upstream (message service) metrics
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamDurationSeconds prometheus.Histogram

	// Fulfillment error metrics
	FulfillmentErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		WebhookRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "badgerchat_webhook_requests_total",
				Help: "Total number of fulfillment webhook requests by intent and status",
			},
			[]string{"intent", "status"}, // status: success, error, not_found, bad_request
		),

		WebhookDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "badgerchat_webhook_duration_seconds",
				Help:    "Fulfillment webhook processing duration in seconds by intent",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}, // Dialogflow gives up after 5s
			},
			[]string{"intent"},
		),

		UpstreamRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "badgerchat_upstream_requests_total",
				Help: "Total number of message service requests by status",
			},
			[]string{"status"}, // status: success, error, timeout, malformed
		),

		UpstreamDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "badgerchat_upstream_duration_seconds",
				Help:    "Message service request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
			},
		),

		FulfillmentErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "badgerchat_fulfillment_errors_total",
				Help: "Total number of handler failures answered with a fallback text, by kind",
			},
			[]string{"kind"}, // kind: upstream_unavailable, malformed_response, no_messages, missing_parameter, internal
		),
	}

	return m
}

// RecordWebhook records a webhook request
func (m *Metrics) RecordWebhook(intent, status string, duration float64) {
	m.WebhookRequestsTotal.WithLabelValues(intent, status).Inc()
	m.WebhookDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordUpstreamRequest records a message service request with status
func (m *Metrics) RecordUpstreamRequest(status string, duration float64) {
	m.UpstreamRequestsTotal.WithLabelValues(status).Inc()
	m.UpstreamDurationSeconds.Observe(duration)
}

// RecordFulfillmentError records a handler failure
func (m *Metrics) RecordFulfillmentError(kind string) {
	m.FulfillmentErrorsTotal.WithLabelValues(kind).Inc()
}
