// Package api implements the streaming client for the chat-api backend.
package api

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/tidwall/gjson"

	"github.com/diogo/streamchat/internal/config"
)

// StreamHandler receives the full accumulated content after each read that
// produced at least one frame. The final value is always delivered through
// the SendMessage return, so a handler may coalesce freely.
type StreamHandler func(accumulated string)

// ClientInterface defines the client operations needed by the CLI and TUI
type ClientInterface interface {
	SendMessage(ctx context.Context, message string, onUpdate StreamHandler) (string, error)
	ClearConversation(ctx context.Context) error
	Health(ctx context.Context) (string, error)
	BaseURL() string
}

// Client is the streaming chat client. A single Client allows at most one
// logical send in flight; a send issued while another is running returns
// ErrSendInFlight and callers treat it as a no-op.
type Client struct {
	httpClient tls_client.HttpClient
	baseURL    string

	maxRetries int
	baseDelay  time.Duration
	retryable  []int

	// sleep waits out a backoff interval; injectable so tests run with
	// recorded, zero-length delays.
	sleep func(ctx context.Context, d time.Duration) error

	inFlight atomic.Bool
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithMaxRetries sets the maximum number of retry attempts after the first
// failure.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithBaseDelay sets the backoff base; attempt n waits base * 2^n.
func WithBaseDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.baseDelay = d
	}
}

// WithRetryableStatuses sets the response statuses treated as transient.
func WithRetryableStatuses(statuses []int) ClientOption {
	return func(c *Client) {
		c.retryable = append([]int(nil), statuses...)
	}
}

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(hc tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSleepFunc replaces the backoff wait (used by tests).
func WithSleepFunc(fn func(ctx context.Context, d time.Duration) error) ClientOption {
	return func(c *Client) {
		c.sleep = fn
	}
}

// NewClient creates a new Client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}

	defaults := config.DefaultRetryConfig()
	client := &Client{
		baseURL:    baseURL,
		maxRetries: defaults.MaxRetries,
		baseDelay:  time.Duration(defaults.BaseDelayMS) * time.Millisecond,
		retryable:  defaults.RetryableStatuses,
		sleep:      sleepContext,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(300),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = hc
	}

	return client, nil
}

// NewClientFromConfig creates a Client from the loaded user configuration.
func NewClientFromConfig(cfg config.Config, opts ...ClientOption) (*Client, error) {
	base := []ClientOption{
		WithMaxRetries(cfg.Retry.MaxRetries),
		WithBaseDelay(time.Duration(cfg.Retry.BaseDelayMS) * time.Millisecond),
		WithRetryableStatuses(cfg.Retry.RetryableStatuses),
	}
	return NewClient(cfg.BaseURL, append(base, opts...)...)
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// endpoint joins a path onto the base URL
func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

// sleepContext waits for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseErrorMessage extracts a human-readable message from a JSON error
// body. Unparseable bodies yield "" and the caller falls back to a
// status-based message.
func parseErrorMessage(body []byte) string {
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return ""
	}

	for _, path := range []string{"error.message", "error", "message"} {
		if v := parsed.Get(path); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// maxErrorBodySize caps how much of a failed response is read for
// diagnostics.
const maxErrorBodySize = 4096
