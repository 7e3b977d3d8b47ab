// Package messageapi fetches chatroom messages from the BadgerChat message service.
package messageapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/garyellow/badgerchat-fulfillment/internal/buildinfo"
	domerrors "github.com/garyellow/badgerchat-fulfillment/internal/errors"
	"github.com/garyellow/badgerchat-fulfillment/internal/metrics"
)

const (
	// APIKeyHeader carries the BadgerChat credential.
	APIKeyHeader = "X-CS571-ID"

	maxBodyBytes = 4 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// HTTPClient overrides the default transport. Optional.
	HTTPClient *http.Client
	// Metrics records per-request outcomes. Optional.
	Metrics *metrics.Metrics
}

// Client is an HTTP client for the message service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	metrics    *metrics.Metrics
}

// NewClient creates a message service client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		metrics:    cfg.Metrics,
	}
}

// MessagesURL returns the request URL for a chatroom page.
func (c *Client) MessagesURL(chatroom string, page int) string {
	q := url.Values{}
	q.Set("chatroom", chatroom)
	q.Set("page", strconv.Itoa(page))
	return c.baseURL + "/messages?" + q.Encode()
}

// FetchMessages returns one page of chatroom messages, most recent first.
// The chatroom name is sent as given; the service decides whether it exists.
func (c *Client) FetchMessages(ctx context.Context, chatroom string, page int) (*MessagePage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	msgs, err := c.fetch(ctx, c.MessagesURL(chatroom, page))
	c.record(err, time.Since(start))
	if err != nil {
		return nil, err
	}

	return &MessagePage{Chatroom: chatroom, Page: page, Messages: msgs}, nil
}

func (c *Client) fetch(ctx context.Context, reqURL string) ([]ChatMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domerrors.NewUpstreamError(reqURL, 0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domerrors.NewUpstreamError(reqURL, 0, fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, domerrors.NewUpstreamError(reqURL, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var reader io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decompress gzip: %v", domerrors.ErrMalformedResponse, err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	var body struct {
		Messages *[]ChatMessage `json:"messages"`
	}
	if err := json.NewDecoder(io.LimitReader(reader, maxBodyBytes)).Decode(&body); err != nil {
		if ctx.Err() != nil {
			return nil, domerrors.NewUpstreamError(reqURL, resp.StatusCode, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", domerrors.ErrMalformedResponse, err)
	}
	if body.Messages == nil {
		return nil, fmt.Errorf("%w: missing messages array", domerrors.ErrMalformedResponse)
	}

	return *body.Messages, nil
}

func (c *Client) record(err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordUpstreamRequest(upstreamStatus(err), elapsed.Seconds())
}

func upstreamStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, domerrors.ErrMalformedResponse):
		return "malformed"
	default:
		return "error"
	}
}
