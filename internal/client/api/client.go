// Package api is the REST client for the Focinho Amigo backend. Every
// authenticated request carries a bearer access token; a 401 answer
// triggers exactly one refresh-token exchange followed by one replay of
// the original request (see transport.go). All responses are JSON except
// attachment uploads, which are multipart.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/victorozoterio/friendly-snout-console/internal/logging"
)

// TokenStore is the persistence contract for the access/refresh pair.
// Implemented by the session package's SQLite store; tests use an
// in-memory stub.
type TokenStore interface {
	// Tokens returns the stored pair. Both strings are empty when no
	// session exists; that is not an error.
	Tokens(ctx context.Context) (access, refresh string, err error)

	// SetTokens replaces the stored pair atomically.
	SetTokens(ctx context.Context, access, refresh string) error

	// ClearTokens removes the pair (logout, irrecoverable 401).
	ClearTokens(ctx context.Context) error
}

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger

	refresh refreshGate
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying *http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New builds a Client for the given base URL (e.g. "https://api.shelter.org").
func New(baseURL string, tokens TokenStore, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues an authenticated GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// sendJSON issues an authenticated request with a JSON body. in may be nil
// for body-less writes (e.g. activate/deactivate). out may be nil when the
// caller does not care about the response body.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		body = data
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

// decodeInto parses a JSON response body into out, tolerating empty
// bodies for callers that pass out == nil.
func decodeInto(body io.Reader, out any) error {
	if out == nil {
		_, err := io.Copy(io.Discard, body)
		return err
	}
	return json.NewDecoder(body).Decode(out)
}

// buildRequest assembles the HTTP request for one attempt. The body is
// kept as a byte slice so the refresh-and-replay path can rebuild the
// request without any shared mutable state.
func (c *Client) buildRequest(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	// Correlates client and server logs; a replayed request gets a
	// fresh id.
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}
