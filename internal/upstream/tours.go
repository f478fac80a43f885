package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// TourClient defines the tour operations the assignment workflow depends on.
type TourClient interface {
	// List returns all tour records.
	List(ctx context.Context) ([]domain.Tour, error)

	// Create creates the tour record for a committed assignment. The
	// request's ClientRef makes a retried create safe: the backend upserts
	// on it rather than inserting a duplicate.
	Create(ctx context.Context, req domain.TourRequest) (domain.Tour, error)
}

type httpTourClient struct {
	c *Client
}

// NewTourClient constructs a TourClient backed by the shared Client.
func NewTourClient(c *Client) TourClient {
	return &httpTourClient{c: c}
}

func (t *httpTourClient) List(ctx context.Context) ([]domain.Tour, error) {
	body, err := t.c.get(ctx, "/api/tours", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.TourClient.List: %w", err)
	}
	return decodeElems[domain.Tour](extractList(body, "tours"), "tours", t.c.log), nil
}

func (t *httpTourClient) Create(ctx context.Context, req domain.TourRequest) (domain.Tour, error) {
	var out domain.Tour
	if err := t.c.send(ctx, http.MethodPost, "/api/tours", req, &out); err != nil {
		return domain.Tour{}, fmt.Errorf("upstream.TourClient.Create: %w", err)
	}
	return out, nil
}
