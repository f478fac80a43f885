package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// FeedbackClient defines the visitor-feedback operations the dashboard
// depends on.
type FeedbackClient interface {
	List(ctx context.Context) ([]domain.Feedback, error)
	Reply(ctx context.Context, id, reply string) error
	Delete(ctx context.Context, id string) error
}

type httpFeedbackClient struct {
	c *Client
}

// NewFeedbackClient constructs a FeedbackClient backed by the shared Client.
func NewFeedbackClient(c *Client) FeedbackClient {
	return &httpFeedbackClient{c: c}
}

func (f *httpFeedbackClient) List(ctx context.Context) ([]domain.Feedback, error) {
	body, err := f.c.get(ctx, "/api/feedback", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.FeedbackClient.List: %w", err)
	}
	return decodeElems[domain.Feedback](extractList(body, "feedback"), "feedback", f.c.log), nil
}

func (f *httpFeedbackClient) Reply(ctx context.Context, id, reply string) error {
	payload := struct {
		Reply string `json:"reply"`
	}{Reply: reply}
	if err := f.c.send(ctx, http.MethodPost, "/api/feedback/"+id+"/reply", payload, nil); err != nil {
		return fmt.Errorf("upstream.FeedbackClient.Reply: %w", err)
	}
	return nil
}

func (f *httpFeedbackClient) Delete(ctx context.Context, id string) error {
	if err := f.c.send(ctx, http.MethodDelete, "/api/feedback/"+id, nil, nil); err != nil {
		return fmt.Errorf("upstream.FeedbackClient.Delete: %w", err)
	}
	return nil
}
