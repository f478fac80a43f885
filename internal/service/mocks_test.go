package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/service"
	"github.com/jmwanyama/safari-ops/internal/upstream"
)

// quietLog keeps expected-failure paths from spamming test output.
func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Hand-written test doubles for the upstream interfaces.
// Set only the method fields your test needs; unset methods return zeros.

type mockBookingClient struct {
	list             func(ctx context.Context) ([]domain.Booking, error)
	get              func(ctx context.Context, id string) (domain.Booking, error)
	updateAssignment func(ctx context.Context, id string, sel domain.AssignmentSelection) error
	updateStatus     func(ctx context.Context, id string, status domain.BookingStatus) error
	del              func(ctx context.Context, id string) error
}

func (m *mockBookingClient) List(ctx context.Context) ([]domain.Booking, error) {
	if m.list == nil {
		return []domain.Booking{}, nil
	}
	return m.list(ctx)
}

func (m *mockBookingClient) Get(ctx context.Context, id string) (domain.Booking, error) {
	if m.get == nil {
		return domain.Booking{ID: id}, nil
	}
	return m.get(ctx, id)
}

func (m *mockBookingClient) UpdateAssignment(ctx context.Context, id string, sel domain.AssignmentSelection) error {
	if m.updateAssignment == nil {
		return nil
	}
	return m.updateAssignment(ctx, id, sel)
}

func (m *mockBookingClient) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if m.updateStatus == nil {
		return nil
	}
	return m.updateStatus(ctx, id, status)
}

func (m *mockBookingClient) Delete(ctx context.Context, id string) error {
	if m.del == nil {
		return nil
	}
	return m.del(ctx, id)
}

var _ upstream.BookingClient = (*mockBookingClient)(nil)

type mockTourClient struct {
	list   func(ctx context.Context) ([]domain.Tour, error)
	create func(ctx context.Context, req domain.TourRequest) (domain.Tour, error)
}

func (m *mockTourClient) List(ctx context.Context) ([]domain.Tour, error) {
	if m.list == nil {
		return []domain.Tour{}, nil
	}
	return m.list(ctx)
}

func (m *mockTourClient) Create(ctx context.Context, req domain.TourRequest) (domain.Tour, error) {
	if m.create == nil {
		return domain.Tour{}, nil
	}
	return m.create(ctx, req)
}

var _ upstream.TourClient = (*mockTourClient)(nil)

type mockStaffClient struct {
	list func(ctx context.Context, q upstream.StaffQuery) ([]domain.StaffMember, error)
}

func (m *mockStaffClient) List(ctx context.Context, q upstream.StaffQuery) ([]domain.StaffMember, error) {
	return m.list(ctx, q)
}

var _ upstream.StaffClient = (*mockStaffClient)(nil)

type mockComplaintClient struct {
	list         func(ctx context.Context) ([]domain.Complaint, error)
	updateStatus func(ctx context.Context, id, status string) error
	del          func(ctx context.Context, id string) error
}

func (m *mockComplaintClient) List(ctx context.Context) ([]domain.Complaint, error) {
	if m.list == nil {
		return []domain.Complaint{}, nil
	}
	return m.list(ctx)
}

func (m *mockComplaintClient) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatus == nil {
		return nil
	}
	return m.updateStatus(ctx, id, status)
}

func (m *mockComplaintClient) Delete(ctx context.Context, id string) error {
	if m.del == nil {
		return nil
	}
	return m.del(ctx, id)
}

var _ upstream.ComplaintClient = (*mockComplaintClient)(nil)

type mockApplicationClient struct {
	list         func(ctx context.Context) ([]domain.Application, error)
	updateStatus func(ctx context.Context, id, status string) error
}

func (m *mockApplicationClient) List(ctx context.Context) ([]domain.Application, error) {
	if m.list == nil {
		return []domain.Application{}, nil
	}
	return m.list(ctx)
}

func (m *mockApplicationClient) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatus == nil {
		return nil
	}
	return m.updateStatus(ctx, id, status)
}

var _ upstream.ApplicationClient = (*mockApplicationClient)(nil)

type mockFuelClaimClient struct {
	list         func(ctx context.Context) ([]domain.FuelClaim, error)
	updateStatus func(ctx context.Context, id, status string) error
}

func (m *mockFuelClaimClient) List(ctx context.Context) ([]domain.FuelClaim, error) {
	if m.list == nil {
		return []domain.FuelClaim{}, nil
	}
	return m.list(ctx)
}

func (m *mockFuelClaimClient) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatus == nil {
		return nil
	}
	return m.updateStatus(ctx, id, status)
}

var _ upstream.FuelClaimClient = (*mockFuelClaimClient)(nil)

type mockFeedbackClient struct {
	list  func(ctx context.Context) ([]domain.Feedback, error)
	reply func(ctx context.Context, id, reply string) error
	del   func(ctx context.Context, id string) error
}

func (m *mockFeedbackClient) List(ctx context.Context) ([]domain.Feedback, error) {
	if m.list == nil {
		return []domain.Feedback{}, nil
	}
	return m.list(ctx)
}

func (m *mockFeedbackClient) Reply(ctx context.Context, id, reply string) error {
	if m.reply == nil {
		return nil
	}
	return m.reply(ctx, id, reply)
}

func (m *mockFeedbackClient) Delete(ctx context.Context, id string) error {
	if m.del == nil {
		return nil
	}
	return m.del(ctx, id)
}

var _ upstream.FeedbackClient = (*mockFeedbackClient)(nil)

type mockDonationClient struct {
	list func(ctx context.Context) ([]domain.Donation, error)
}

func (m *mockDonationClient) List(ctx context.Context) ([]domain.Donation, error) {
	if m.list == nil {
		return []domain.Donation{}, nil
	}
	return m.list(ctx)
}

var _ upstream.DonationClient = (*mockDonationClient)(nil)

// mockRefresher counts the full refreshes triggered by the commit workflow.
type mockRefresher struct {
	calls int
	err   error
}

func (m *mockRefresher) Refresh(ctx context.Context) (domain.Snapshot, error) {
	m.calls++
	return domain.Snapshot{}, m.err
}

var _ service.Refresher = (*mockRefresher)(nil)

// mockGuideSource is a static GuideSource for dashboard tests.
type mockGuideSource struct {
	guides     []domain.StaffMember
	refreshErr error
}

func (m *mockGuideSource) Refresh(ctx context.Context, _ time.Time) error {
	return m.refreshErr
}

func (m *mockGuideSource) Guides() []domain.StaffMember {
	if m.guides == nil {
		return []domain.StaffMember{}
	}
	return m.guides
}

var _ service.GuideSource = (*mockGuideSource)(nil)
