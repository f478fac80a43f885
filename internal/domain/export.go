package domain

// ExportRow is a single row in the bookings export download.
// It is a flat, denormalized view: one row per booking with the assignment
// fields resolved to staff names where the staff list allows it, otherwise
// the raw IDs. Empty string means "not assigned".
type ExportRow struct {
	BookingID    string
	TouristName  string
	ActivityName string
	BookingDate  string // "2006-01-02" formatted date
	Status       string
	PartySize    int
	Total        float64
	Driver       string
	TourGuide    string
}
