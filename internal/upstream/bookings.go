package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// BookingClient defines the booking operations the service layer depends on.
// The service depends on this interface, not the HTTP implementation, which
// allows it to be unit-tested with a mock.
type BookingClient interface {
	// List returns all bookings as the backend sent them, envelope
	// unwrapped but otherwise raw — normalization is the service's job.
	List(ctx context.Context) ([]domain.Booking, error)

	// Get retrieves a single booking by ID.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	Get(ctx context.Context, id string) (domain.Booking, error)

	// UpdateAssignment sets the booking's driver and tourGuide references.
	// Nil pointers are sent as explicit JSON nulls to clear an assignment.
	UpdateAssignment(ctx context.Context, id string, sel domain.AssignmentSelection) error

	// UpdateStatus sets the booking's status field.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error

	// Delete removes a booking. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

type httpBookingClient struct {
	c *Client
}

// NewBookingClient constructs a BookingClient backed by the shared Client.
func NewBookingClient(c *Client) BookingClient {
	return &httpBookingClient{c: c}
}

func (b *httpBookingClient) List(ctx context.Context) ([]domain.Booking, error) {
	body, err := b.c.get(ctx, "/api/bookings", nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.BookingClient.List: %w", err)
	}
	elems := extractList(body, "bookings")
	if elems == nil {
		b.c.log.Warn("bookings response matched no known envelope shape")
		return []domain.Booking{}, nil
	}
	return decodeElems[domain.Booking](elems, "bookings", b.c.log), nil
}

func (b *httpBookingClient) Get(ctx context.Context, id string) (domain.Booking, error) {
	var out domain.Booking
	if err := b.c.send(ctx, http.MethodGet, "/api/bookings/"+id, nil, &out); err != nil {
		return domain.Booking{}, fmt.Errorf("upstream.BookingClient.Get: %w", err)
	}
	return out, nil
}

func (b *httpBookingClient) UpdateAssignment(ctx context.Context, id string, sel domain.AssignmentSelection) error {
	// sel's pointer fields have no omitempty: a nil driver or guide is
	// serialized as null, which the backend treats as "clear the reference".
	if err := b.c.send(ctx, http.MethodPut, "/api/bookings/"+id, sel, nil); err != nil {
		return fmt.Errorf("upstream.BookingClient.UpdateAssignment: %w", err)
	}
	return nil
}

func (b *httpBookingClient) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	payload := struct {
		Status domain.BookingStatus `json:"status"`
	}{Status: status}
	if err := b.c.send(ctx, http.MethodPut, "/api/bookings/"+id, payload, nil); err != nil {
		return fmt.Errorf("upstream.BookingClient.UpdateStatus: %w", err)
	}
	return nil
}

func (b *httpBookingClient) Delete(ctx context.Context, id string) error {
	if err := b.c.send(ctx, http.MethodDelete, "/api/bookings/"+id, nil, nil); err != nil {
		return fmt.Errorf("upstream.BookingClient.Delete: %w", err)
	}
	return nil
}
