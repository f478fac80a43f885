// Package upstream contains all access to the reservations backend.
// Each resource has its own file with an interface and an HTTP implementation.
// No business logic lives here — only HTTP mechanics and type mapping.
//
// The backend is an opaque collaborator with inconsistent response
// envelopes; envelope.go centralizes the shape probing so the fragility
// stays at this one boundary.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

type tokenKey struct{}

// WithToken returns a context carrying the bearer token to forward on
// upstream calls. The token is supplied by the external auth layer; this
// service never validates it, only forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Client performs JSON-over-HTTP calls against the reservations backend.
// All resource clients share one Client so they share one connection pool
// and one timeout policy.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New constructs a Client for the given base URL. The timeout applies per
// request; a hung backend call becomes a fetch failure instead of a spinner
// that never resolves.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// get issues a GET and returns the raw response body, leaving envelope
// probing to the caller.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	return c.do(req)
}

// send issues method with an optional JSON body and, when out is non-nil,
// decodes the response object into it through the envelope probe.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: encode body: %w", err)
		}
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), buf)
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	respBody, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	obj := extractObject(respBody)
	if len(obj) == 0 {
		return nil
	}
	if err := json.Unmarshal(obj, out); err != nil {
		return fmt.Errorf("upstream: decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if tok := TokenFromContext(req.Context()); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", domain.ErrUpstream, req.Method, req.URL.Path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
