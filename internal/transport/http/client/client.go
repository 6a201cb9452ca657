// Package client implements the thin JSON transport the sync engine issues
// its calls through: content-type handling, error-body extraction and the
// explicit no-content result for 204 responses. It never retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"

	"go.uber.org/zap"
)

const genericErrorMessage = "unknown error"

// APIError carries the HTTP status and the message extracted from the
// error body, or a generic message when the body was not parseable.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Message }

// Client issues JSON requests against the admin API.
type Client struct {
	base    string
	httpc   *http.Client
	headers http.Header
	log     *zap.SugaredLogger
}

// New constructs a transport client for the given base URL.
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{Timeout: timeout},
		log:   log.Named("transport.client"),
	}
}

// WithHeaders returns a copy of the client that merges the given headers
// into every request.
func (c *Client) WithHeaders(h http.Header) *Client {
	out := *c
	out.headers = h.Clone()
	return &out
}

// Request performs one JSON call. A nil result with a nil error means the
// server answered with no content (204); callers must treat that as a
// valid empty success.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vals := range c.headers {
		for _, v := range vals {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}

func errorMessage(raw []byte) string {
	var body api.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return genericErrorMessage
	}
	return body.Error
}
