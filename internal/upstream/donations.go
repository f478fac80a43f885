package upstream

import (
	"context"
	"fmt"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// DonationClient defines the donation listing the overview tab depends on.
type DonationClient interface {
	List(ctx context.Context) ([]domain.Donation, error)
}

type httpDonationClient struct {
	c *Client
}

// NewDonationClient constructs a DonationClient backed by the shared Client.
func NewDonationClient(c *Client) DonationClient {
	return &httpDonationClient{c: c}
}

func (d *httpDonationClient) List(ctx context.Context) ([]domain.Donation, error) {
	body, err := d.c.get(ctx, "/api/donations", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.DonationClient.List: %w", err)
	}
	return decodeElems[domain.Donation](extractList(body, "donations"), "donations", d.c.log), nil
}
