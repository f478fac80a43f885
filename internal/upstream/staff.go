package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// StaffQuery narrows a staff listing. The zero value lists everyone with
// their global availability flag; setting Date makes the availability flag
// date-scoped to that calendar day.
type StaffQuery struct {
	Role            domain.StaffRole
	Date            time.Time
	IncludeInactive bool
}

// StaffClient defines the staff directory operation the service depends on.
//
// The backend may ignore any of the query filters and return all staff
// regardless; callers must re-filter locally and treat the availability
// flag as informational.
type StaffClient interface {
	List(ctx context.Context, q StaffQuery) ([]domain.StaffMember, error)
}

type httpStaffClient struct {
	c *Client
}

// NewStaffClient constructs a StaffClient backed by the shared Client.
func NewStaffClient(c *Client) StaffClient {
	return &httpStaffClient{c: c}
}

func (s *httpStaffClient) List(ctx context.Context, q StaffQuery) ([]domain.StaffMember, error) {
	query := url.Values{}
	if q.Role != "" {
		query.Set("role", string(q.Role))
	}
	if !q.Date.IsZero() {
		query.Set("date", q.Date.Format("2006-01-02"))
	}
	if q.IncludeInactive {
		query.Set("includeInactive", "true")
	}

	body, err := s.c.get(ctx, "/api/staff", query)
	if err != nil {
		return nil, fmt.Errorf("upstream.StaffClient.List: %w", err)
	}
	elems := extractList(body, "staff")
	if elems == nil {
		elems = extractList(body, "users")
	}
	return decodeElems[domain.StaffMember](elems, "staff", s.c.log), nil
}
