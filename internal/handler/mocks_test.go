package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/handler"
)

// Test doubles for the servicer interfaces. Each method is a function
// field — set only the ones your test needs; unset methods return zeros.

type mockBookingServicer struct {
	list         func(ctx context.Context) ([]domain.Booking, error)
	updateStatus func(ctx context.Context, id, status string) error
	delete       func(ctx context.Context, id string) error
}

func (m *mockBookingServicer) List(ctx context.Context) ([]domain.Booking, error) {
	if m.list == nil {
		return []domain.Booking{}, nil
	}
	return m.list(ctx)
}

func (m *mockBookingServicer) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatus == nil {
		return nil
	}
	return m.updateStatus(ctx, id, status)
}

func (m *mockBookingServicer) Delete(ctx context.Context, id string) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, id)
}

var _ handler.BookingServicer = (*mockBookingServicer)(nil)

type mockAssignmentServicer struct {
	assign func(ctx context.Context, bookingID string, sel domain.AssignmentSelection) (domain.AssignmentResult, error)
}

func (m *mockAssignmentServicer) Assign(ctx context.Context, bookingID string, sel domain.AssignmentSelection) (domain.AssignmentResult, error) {
	if m.assign == nil {
		return domain.AssignmentResult{BookingID: bookingID}, nil
	}
	return m.assign(ctx, bookingID, sel)
}

var _ handler.AssignmentServicer = (*mockAssignmentServicer)(nil)

type mockStaffServicer struct {
	refresh func(ctx context.Context, date time.Time) error
	drivers []domain.StaffMember
	guides  []domain.StaffMember
}

func (m *mockStaffServicer) Refresh(ctx context.Context, date time.Time) error {
	if m.refresh == nil {
		return nil
	}
	return m.refresh(ctx, date)
}

func (m *mockStaffServicer) Drivers() []domain.StaffMember {
	if m.drivers == nil {
		return []domain.StaffMember{}
	}
	return m.drivers
}

func (m *mockStaffServicer) Guides() []domain.StaffMember {
	if m.guides == nil {
		return []domain.StaffMember{}
	}
	return m.guides
}

var _ handler.StaffServicer = (*mockStaffServicer)(nil)

type mockDashboardServicer struct {
	snapshot func(ctx context.Context) (domain.Snapshot, error)
	refresh  func(ctx context.Context) (domain.Snapshot, error)
	view     domain.View
	setView  func(name string) (domain.View, error)
}

func (m *mockDashboardServicer) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if m.snapshot == nil {
		return domain.Snapshot{}, nil
	}
	return m.snapshot(ctx)
}

func (m *mockDashboardServicer) Refresh(ctx context.Context) (domain.Snapshot, error) {
	if m.refresh == nil {
		return domain.Snapshot{}, nil
	}
	return m.refresh(ctx)
}

func (m *mockDashboardServicer) View() domain.View {
	if m.view == "" {
		return domain.ViewOverview
	}
	return m.view
}

func (m *mockDashboardServicer) SetView(name string) (domain.View, error) {
	if m.setView == nil {
		v, ok := domain.ParseView(name)
		if !ok {
			return "", domain.ErrValidation
		}
		return v, nil
	}
	return m.setView(name)
}

var _ handler.DashboardServicer = (*mockDashboardServicer)(nil)

type mockOpsServicer struct {
	updateComplaint   func(ctx context.Context, id, status string) error
	deleteComplaint   func(ctx context.Context, id string) error
	updateApplication func(ctx context.Context, id, status string) error
	updateFuelClaim   func(ctx context.Context, id, status string) error
	replyFeedback     func(ctx context.Context, id, reply string) error
	deleteFeedback    func(ctx context.Context, id string) error
}

func (m *mockOpsServicer) UpdateComplaint(ctx context.Context, id, status string) error {
	if m.updateComplaint == nil {
		return nil
	}
	return m.updateComplaint(ctx, id, status)
}

func (m *mockOpsServicer) DeleteComplaint(ctx context.Context, id string) error {
	if m.deleteComplaint == nil {
		return nil
	}
	return m.deleteComplaint(ctx, id)
}

func (m *mockOpsServicer) UpdateApplication(ctx context.Context, id, status string) error {
	if m.updateApplication == nil {
		return nil
	}
	return m.updateApplication(ctx, id, status)
}

func (m *mockOpsServicer) UpdateFuelClaim(ctx context.Context, id, status string) error {
	if m.updateFuelClaim == nil {
		return nil
	}
	return m.updateFuelClaim(ctx, id, status)
}

func (m *mockOpsServicer) ReplyFeedback(ctx context.Context, id, reply string) error {
	if m.replyFeedback == nil {
		return nil
	}
	return m.replyFeedback(ctx, id, reply)
}

func (m *mockOpsServicer) DeleteFeedback(ctx context.Context, id string) error {
	if m.deleteFeedback == nil {
		return nil
	}
	return m.deleteFeedback(ctx, id)
}

var _ handler.OpsServicer = (*mockOpsServicer)(nil)

type mockExportServicer struct {
	rows func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Rows(ctx context.Context) ([]domain.ExportRow, error) {
	if m.rows == nil {
		return []domain.ExportRow{}, nil
	}
	return m.rows(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given deps into a chi router,
// mirroring how main.go wires it in production. Nil deps are replaced with
// zero-value mocks so each test only specifies what it cares about.
func newHTTPHandler(deps handler.Deps) http.Handler {
	if deps.Bookings == nil {
		deps.Bookings = &mockBookingServicer{}
	}
	if deps.Assignments == nil {
		deps.Assignments = &mockAssignmentServicer{}
	}
	if deps.Staff == nil {
		deps.Staff = &mockStaffServicer{}
	}
	if deps.Dashboard == nil {
		deps.Dashboard = &mockDashboardServicer{}
	}
	if deps.Ops == nil {
		deps.Ops = &mockOpsServicer{}
	}
	if deps.Export == nil {
		deps.Export = &mockExportServicer{}
	}

	r := chi.NewRouter()
	handler.NewServer(deps).Routes(r)
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
