// Package testutil provides shared helpers for tests that need a fake
// reservations backend. The fake is an httptest.Server with canned
// responses per route, plus a request log for asserting call counts and
// payloads.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures one request the fake backend received.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
	Bearer string // token from the Authorization header, without the "Bearer " prefix
}

// FakeUpstream is a canned-response stand-in for the reservations backend.
// Register responses with Respond before issuing calls; unregistered routes
// answer 404. Safe for concurrent use — fan-out tests hit it from multiple
// goroutines.
type FakeUpstream struct {
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse // keyed by "METHOD path"
	requests  []RecordedRequest
}

type cannedResponse struct {
	status int
	body   string
}

// NewFakeUpstream starts a FakeUpstream that shuts down automatically when
// the test (and all its subtests) finish.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{responses: map[string]cannedResponse{}}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the fake backend's base URL.
func (f *FakeUpstream) URL() string {
	return f.srv.URL
}

// Respond registers the response for "METHOD path" requests.
func (f *FakeUpstream) Respond(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = cannedResponse{status: status, body: body}
}

// Requests returns a copy of all requests received so far.
func (f *FakeUpstream) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestsTo returns the requests matching "METHOD path".
func (f *FakeUpstream) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *FakeUpstream) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec := RecordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body}
	if auth := r.Header.Get("Authorization"); len(auth) > len("Bearer ") && auth[:len("Bearer ")] == "Bearer " {
		rec.Bearer = auth[len("Bearer "):]
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}
