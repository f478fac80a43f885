package domain

import "time"

// View names a dashboard tab. The shell tracks which one is active and the
// assignment workflow switches to ViewTours after a tour record is created.
type View string

const (
	ViewOverview     View = "overview"
	ViewBookings     View = "bookings"
	ViewTours        View = "tours"
	ViewComplaints   View = "complaints"
	ViewApplications View = "applications"
	ViewFuelClaims   View = "fuelClaims"
	ViewFeedback     View = "feedback"
)

// ParseView validates a raw view name.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewOverview, ViewBookings, ViewTours, ViewComplaints,
		ViewApplications, ViewFuelClaims, ViewFeedback:
		return View(s), true
	default:
		return "", false
	}
}

// Complaint is a visitor complaint record managed from the dashboard.
type Complaint struct {
	ID      string `json:"_id"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
	Reply   string `json:"reply,omitempty"`
}

// Application is a job application (guide or driver position).
type Application struct {
	ID       string `json:"_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Position string `json:"position,omitempty"`
	Status   string `json:"status,omitempty"`
}

// FuelClaim is a driver's fuel reimbursement claim.
type FuelClaim struct {
	ID     string  `json:"_id"`
	Driver string  `json:"driver,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Status string  `json:"status,omitempty"`
}

// Feedback is a visitor feedback entry.
type Feedback struct {
	ID      string `json:"_id"`
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
	Reply   string `json:"reply,omitempty"`
}

// Donation is a conservation donation record, shown on the overview tab.
type Donation struct {
	ID     string  `json:"_id"`
	Donor  string  `json:"donor,omitempty"`
	Amount float64 `json:"amount,omitempty"`
}

// Stats are the aggregate counters shown on the overview tab. They are
// computed only from a fully settled snapshot, never from a partial one, so
// the counts are always mutually consistent.
type Stats struct {
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	TodayBookings     int     `json:"todayBookings"`
	UnassignedDrivers int     `json:"unassignedDrivers"` // bookings with no driver yet
	TotalTours        int     `json:"totalTours"`
	OpenComplaints    int     `json:"openComplaints"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalDonations    float64 `json:"totalDonations"`
}

// Snapshot is the full dashboard dataset produced by one fan-out refresh.
// Each slice settles independently: a failed fetch leaves its slice empty
// rather than failing the snapshot.
type Snapshot struct {
	Bookings     []Booking     `json:"bookings"`
	Tours        []Tour        `json:"tours"`
	Complaints   []Complaint   `json:"complaints"`
	Applications []Application `json:"applications"`
	FuelClaims   []FuelClaim   `json:"fuelClaims"`
	Feedback     []Feedback    `json:"feedback"`
	Donations    []Donation    `json:"donations"`
	Guides       []StaffMember `json:"guides"`
	Stats        Stats         `json:"stats"`
	RefreshedAt  time.Time     `json:"refreshedAt"`
}

// ComputeStats derives the overview counters from the snapshot's datasets.
func (s *Snapshot) ComputeStats() {
	st := Stats{
		TotalBookings: len(s.Bookings),
		TotalTours:    len(s.Tours),
	}
	for _, b := range s.Bookings {
		if b.Status == StatusPending {
			st.PendingBookings++
		}
		if b.IsToday {
			st.TodayBookings++
		}
		if b.Driver == nil {
			st.UnassignedDrivers++
		}
		st.TotalRevenue += b.Total
	}
	for _, c := range s.Complaints {
		if c.Status != "resolved" && c.Status != "closed" {
			st.OpenComplaints++
		}
	}
	for _, d := range s.Donations {
		st.TotalDonations += d.Amount
	}
	s.Stats = st
}
