package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// ApplicationClient defines the job-application operations the dashboard
// depends on.
type ApplicationClient interface {
	List(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type httpApplicationClient struct {
	c *Client
}

// NewApplicationClient constructs an ApplicationClient backed by the shared Client.
func NewApplicationClient(c *Client) ApplicationClient {
	return &httpApplicationClient{c: c}
}

func (ac *httpApplicationClient) List(ctx context.Context) ([]domain.Application, error) {
	body, err := ac.c.get(ctx, "/api/applications", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.ApplicationClient.List: %w", err)
	}
	return decodeElems[domain.Application](extractList(body, "applications"), "applications", ac.c.log), nil
}

func (ac *httpApplicationClient) UpdateStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	if err := ac.c.send(ctx, http.MethodPut, "/api/applications/"+id, payload, nil); err != nil {
		return fmt.Errorf("upstream.ApplicationClient.UpdateStatus: %w", err)
	}
	return nil
}
