package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// FuelClaimClient defines the fuel-claim operations the dashboard depends on.
type FuelClaimClient interface {
	List(ctx context.Context) ([]domain.FuelClaim, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type httpFuelClaimClient struct {
	c *Client
}

// NewFuelClaimClient constructs a FuelClaimClient backed by the shared Client.
func NewFuelClaimClient(c *Client) FuelClaimClient {
	return &httpFuelClaimClient{c: c}
}

func (fc *httpFuelClaimClient) List(ctx context.Context) ([]domain.FuelClaim, error) {
	body, err := fc.c.get(ctx, "/api/fuel-claims", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.FuelClaimClient.List: %w", err)
	}
	return decodeElems[domain.FuelClaim](extractList(body, "fuelClaims"), "fuelClaims", fc.c.log), nil
}

func (fc *httpFuelClaimClient) UpdateStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	if err := fc.c.send(ctx, http.MethodPut, "/api/fuel-claims/"+id, payload, nil); err != nil {
		return fmt.Errorf("upstream.FuelClaimClient.UpdateStatus: %w", err)
	}
	return nil
}
