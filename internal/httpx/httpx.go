// Package httpx wraps net/http with the request policy shared by every
// VolunteerHub API call: JSON baseline headers, a per-attempt request id,
// and a bounded retry loop for transient failures.
package httpx

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const (
	// DefaultAttempts is the total attempt budget, first try included.
	DefaultAttempts = 3
	// DefaultDelay is the constant pause between attempts. There is no
	// backoff or jitter; with synchronized clients this can hammer a
	// recovering gateway, so revisit before raising the attempt budget.
	DefaultDelay = 1 * time.Second
)

// Request describes a single HTTP call. Body, if non-nil, is buffered so
// each retry attempt sends a fresh copy.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Client performs HTTP requests with retries on transport errors and
// gateway timeouts. Any other completed response, including business-level
// 4xx/5xx, is returned to the caller as-is on the first attempt.
type Client struct {
	http     *http.Client
	attempts int
	delay    time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithAttempts sets the total attempt budget (minimum 1).
func WithAttempts(n int) Option {
	return func(c *Client) {
		if n >= 1 {
			c.attempts = n
		}
	}
}

// WithDelay sets the pause between attempts (must be positive).
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{},
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do executes the request, retrying on transport failure and on HTTP 504
// until the attempt budget is exhausted. After exhaustion the last error is
// returned. The caller owns the response body.
//
// Baseline headers (JSON content type and accept) are merged under the
// request's own headers; the caller wins on key collision.
func (c *Client) Do(ctx context.Context, req Request) (*http.Response, error) {
	backoff := retry.WithMaxRetries(uint64(c.attempts-1), retry.NewConstant(c.delay))

	var resp *http.Response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := c.attempt(ctx, req)
		if err != nil {
			return retry.RetryableError(err)
		}
		if r.StatusCode == http.StatusGatewayTimeout {
			r.Body.Close()
			return retry.RetryableError(fmt.Errorf("gateway timeout: %s", r.Status))
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) attempt(ctx context.Context, req Request) (*http.Response, error) {
	var body *bytes.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	} else {
		body = bytes.NewReader(nil)
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Accept", "application/json")
	for k, vals := range req.Header {
		hr.Header.Del(k)
		for _, v := range vals {
			hr.Header.Add(k, v)
		}
	}
	// new id per attempt so retries are distinguishable in server logs
	hr.Header.Set("X-Request-Id", uuid.NewString())

	return c.http.Do(hr)
}
