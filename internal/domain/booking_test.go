package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

func TestParseBookingStatus(t *testing.T) {
	assert.Equal(t, domain.StatusConfirmed, domain.ParseBookingStatus("confirmed"))
	assert.Equal(t, domain.StatusCancelled, domain.ParseBookingStatus("cancelled"))

	// Unknown statuses display as pending by policy.
	assert.Equal(t, domain.StatusPending, domain.ParseBookingStatus("rejected"))
	assert.Equal(t, domain.StatusPending, domain.ParseBookingStatus(""))
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	night := time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)
	yesterday := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	assert.True(t, domain.SameCalendarDay(morning, night))
	assert.False(t, domain.SameCalendarDay(morning, yesterday))
}

func TestComputeStats(t *testing.T) {
	driver := "d1"
	snap := domain.Snapshot{
		Bookings: []domain.Booking{
			{Status: domain.StatusPending, IsToday: true, Total: 100},
			{Status: domain.StatusConfirmed, Driver: &driver, Total: 250.5},
		},
		Tours:      []domain.Tour{{ID: "t1"}},
		Complaints: []domain.Complaint{{Status: "open"}, {Status: "resolved"}},
		Donations:  []domain.Donation{{Amount: 40}, {Amount: 10}},
	}

	snap.ComputeStats()

	assert.Equal(t, 2, snap.Stats.TotalBookings)
	assert.Equal(t, 1, snap.Stats.PendingBookings)
	assert.Equal(t, 1, snap.Stats.TodayBookings)
	assert.Equal(t, 1, snap.Stats.UnassignedDrivers)
	assert.Equal(t, 1, snap.Stats.TotalTours)
	assert.Equal(t, 1, snap.Stats.OpenComplaints)
	assert.InDelta(t, 350.5, snap.Stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 50, snap.Stats.TotalDonations, 1e-9)
}
