// Package errors provides domain-specific error types and sentinel errors
// for the fulfillment webhook.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrUpstreamUnavailable indicates the message service could not be reached
	// or answered with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse indicates the message service answered with a body
	// that is not JSON or lacks the messages array.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrNoMessagesFound indicates a chatroom page had no messages.
	ErrNoMessagesFound = errors.New("no messages found")

	// ErrIntentNotFound indicates no handler is registered for an intent name.
	ErrIntentNotFound = errors.New("intent not found")

	// ErrMissingParameter indicates a required parameter is missing in NLU intent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidInput indicates the caller sent a body that could not be decoded.
	ErrInvalidInput = errors.New("invalid input")
)

// UpstreamError represents a failed call to the message service.
// It matches ErrUpstreamUnavailable through errors.Is.
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream error (url=%s, status=%d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream error (url=%s): %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamUnavailable}
	}
	return []error{ErrUpstreamUnavailable, e.Err}
}

// NewUpstreamError creates a new upstream error.
func NewUpstreamError(url string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Kind returns a short, bounded label describing err, suitable for metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrNoMessagesFound):
		return "no_messages"
	case errors.Is(err, ErrMissingParameter):
		return "missing_parameter"
	case errors.Is(err, ErrIntentNotFound):
		return "intent_not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}

// IsReportable reports whether err should be sent to error tracking.
// Expected conversational outcomes (empty rooms, missing parameters) are not.
func IsReportable(err error) bool {
	switch Kind(err) {
	case "upstream_unavailable", "malformed_response", "internal":
		return true
	default:
		return false
	}
}
