package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// ComplaintClient defines the complaint operations the dashboard depends on.
type ComplaintClient interface {
	List(ctx context.Context) ([]domain.Complaint, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type httpComplaintClient struct {
	c *Client
}

// NewComplaintClient constructs a ComplaintClient backed by the shared Client.
func NewComplaintClient(c *Client) ComplaintClient {
	return &httpComplaintClient{c: c}
}

func (cc *httpComplaintClient) List(ctx context.Context) ([]domain.Complaint, error) {
	body, err := cc.c.get(ctx, "/api/complaints", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.ComplaintClient.List: %w", err)
	}
	return decodeElems[domain.Complaint](extractList(body, "complaints"), "complaints", cc.c.log), nil
}

func (cc *httpComplaintClient) UpdateStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	if err := cc.c.send(ctx, http.MethodPut, "/api/complaints/"+id, payload, nil); err != nil {
		return fmt.Errorf("upstream.ComplaintClient.UpdateStatus: %w", err)
	}
	return nil
}

func (cc *httpComplaintClient) Delete(ctx context.Context, id string) error {
	if err := cc.c.send(ctx, http.MethodDelete, "/api/complaints/"+id, nil, nil); err != nil {
		return fmt.Errorf("upstream.ComplaintClient.Delete: %w", err)
	}
	return nil
}
