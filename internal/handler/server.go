// Package handler implements the HTTP surface of the safari operations
// dashboard. All handlers are methods on Server. Methods are split into
// domain-specific files (booking.go, assignment.go, etc.) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// BookingServicer defines the booking operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the upstream backend.
type BookingServicer interface {
	List(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// AssignmentServicer runs the assignment workflow for one booking.
type AssignmentServicer interface {
	Assign(ctx context.Context, bookingID string, sel domain.AssignmentSelection) (domain.AssignmentResult, error)
}

// StaffServicer exposes the staff directory.
type StaffServicer interface {
	Refresh(ctx context.Context, date time.Time) error
	Drivers() []domain.StaffMember
	Guides() []domain.StaffMember
}

// DashboardServicer exposes the aggregate dashboard state.
type DashboardServicer interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Refresh(ctx context.Context) (domain.Snapshot, error)
	View() domain.View
	SetView(name string) (domain.View, error)
}

// OpsServicer covers the operator actions on the secondary datasets.
type OpsServicer interface {
	UpdateComplaint(ctx context.Context, id, status string) error
	DeleteComplaint(ctx context.Context, id string) error
	UpdateApplication(ctx context.Context, id, status string) error
	UpdateFuelClaim(ctx context.Context, id, status string) error
	ReplyFeedback(ctx context.Context, id, reply string) error
	DeleteFeedback(ctx context.Context, id string) error
}

// ExportServicer produces the flat bookings export.
type ExportServicer interface {
	Rows(ctx context.Context) ([]domain.ExportRow, error)
}

// Server implements the HTTP handlers for all dashboard endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	bookings    BookingServicer
	assignments AssignmentServicer
	staff       StaffServicer
	dashboard   DashboardServicer
	ops         OpsServicer
	export      ExportServicer
}

// Deps bundles the Server's dependencies.
type Deps struct {
	Bookings    BookingServicer
	Assignments AssignmentServicer
	Staff       StaffServicer
	Dashboard   DashboardServicer
	Ops         OpsServicer
	Export      ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(deps Deps) *Server {
	return &Server{
		bookings:    deps.Bookings,
		assignments: deps.Assignments,
		staff:       deps.Staff,
		dashboard:   deps.Dashboard,
		ops:         deps.Ops,
		export:      deps.Export,
	}
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/bookings", s.ListBookings)
		r.Patch("/bookings/{id}/status", s.UpdateBookingStatus)
		r.Delete("/bookings/{id}", s.DeleteBooking)
		r.Put("/bookings/{id}/assignment", s.AssignBooking)

		r.Get("/staff", s.ListStaff)

		r.Get("/dashboard", s.GetDashboard)
		r.Post("/dashboard/refresh", s.RefreshDashboard)
		r.Get("/dashboard/view", s.GetView)
		r.Put("/dashboard/view", s.SetView)

		r.Patch("/complaints/{id}/status", s.UpdateComplaint)
		r.Delete("/complaints/{id}", s.DeleteComplaint)
		r.Patch("/applications/{id}/status", s.UpdateApplication)
		r.Patch("/fuel-claims/{id}/status", s.UpdateFuelClaim)
		r.Post("/feedback/{id}/reply", s.ReplyFeedback)
		r.Delete("/feedback/{id}", s.DeleteFeedback)

		r.Get("/export", s.ExportBookings)
	})
}
