// Package service contains the business logic for the safari operations
// dashboard. Services normalize upstream data, enforce the assignment
// workflow, and orchestrate upstream calls. No HTTP mechanics live here —
// services depend on upstream interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/upstream"
)

// BookingService implements booking listing, status updates, and deletion.
// Listing always returns fully normalized bookings; the raw upstream shapes
// never leave this layer.
type BookingService struct {
	bookings upstream.BookingClient
	dash     Invalidator
	log      *slog.Logger
	now      func() time.Time
}

// NewBookingService constructs a BookingService. now may be nil, in which
// case time.Now is used; tests pass a fixed clock to pin the IsToday flag.
func NewBookingService(bookings upstream.BookingClient, log *slog.Logger, now func() time.Time) *BookingService {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &BookingService{bookings: bookings, log: log, now: now}
}

// SetInvalidator wires the dashboard invalidation hook. Wired after
// construction because the dashboard in turn consumes this service's List.
func (s *BookingService) SetInvalidator(dash Invalidator) {
	s.dash = dash
}

func (s *BookingService) invalidate(ctx context.Context) {
	if s.dash != nil {
		s.dash.Invalidate(ctx)
	}
}

// List returns all bookings, normalized. Always returns a non-nil slice.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	raw, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.List: %w", err)
	}
	today := s.now()
	out := make([]domain.Booking, len(raw))
	for i, b := range raw {
		out[i] = NormalizeBooking(b, today)
	}
	return out, nil
}

// Get returns a single booking by ID, normalized.
func (s *BookingService) Get(ctx context.Context, id string) (domain.Booking, error) {
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Get: %w", err)
	}
	return NormalizeBooking(b, s.now()), nil
}

// UpdateStatus sets a booking's status. The input must name a known status;
// unknown values are rejected with domain.ErrValidation rather than silently
// coerced (coercion is a display policy, not a write policy).
// The write is primary: nothing is mutated locally until upstream confirms,
// and only then is the dashboard snapshot invalidated.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	parsed := domain.BookingStatus(status)
	if domain.ParseBookingStatus(status) != parsed {
		return fmt.Errorf("service.BookingService.UpdateStatus: %w: unknown status %q", domain.ErrValidation, status)
	}
	if err := s.bookings.UpdateStatus(ctx, id, parsed); err != nil {
		return fmt.Errorf("service.BookingService.UpdateStatus: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a booking. The dashboard snapshot is invalidated only after
// upstream confirms the delete, so a failed delete leaves the dashboard
// unchanged.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.BookingService.Delete: %w", err)
	}
	s.invalidate(ctx)
	return nil
}
