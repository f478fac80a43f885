// Package domain contains the core data types for the safari operations
// dashboard. This package has no external dependencies and is imported by
// every other internal package (upstream, service, handler).
package domain

import "time"

// BookingStatus is the lifecycle state of a booking as reported by the
// reservations backend.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus maps a raw status string onto a known BookingStatus.
// Anything outside the known set is treated as pending. The backend has been
// observed emitting statuses this dashboard has no rendering for, and pending
// is the safe display default.
func ParseBookingStatus(s string) BookingStatus {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s)
	default:
		return StatusPending
	}
}

// Contact is the customer record linked to a booking. The link is nil when
// the backend failed to populate it, in which case the contact details must
// be recovered from the booking's free-text notes.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ActivityRef is the activity record linked to a booking.
type ActivityRef struct {
	Name     string  `json:"name,omitempty"`
	Location string  `json:"location,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// Booking represents a tourist's reservation for an activity, the root
// entity officers manage.
//
// The struct carries two groups of fields. The first group mirrors what the
// reservations backend sends, including its inconsistencies: the customer
// and activity links may be nil, the participant count and total amount each
// arrive under one of several field names, and notes may hold a pipe-
// delimited contact blob. The second group holds the display fields derived
// from the first by service.NormalizeBooking. Deriving is idempotent: a
// populated display field is never overwritten.
type Booking struct {
	ID             string        `json:"_id"`
	Customer       *Contact      `json:"customer,omitempty"`
	Activity       *ActivityRef  `json:"activity,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	BookingDate    time.Time     `json:"bookingDate"`
	PreferredDate  time.Time     `json:"preferredDate"`
	Participants   int           `json:"participants,omitempty"`
	NumberOfPeople int           `json:"numberOfPeople,omitempty"`
	GroupSize      int           `json:"groupSize,omitempty"`
	TotalAmount    float64       `json:"totalAmount,omitempty"`
	TotalPrice     float64       `json:"totalPrice,omitempty"`
	Status         BookingStatus `json:"status,omitempty"`
	Driver         *string       `json:"driver,omitempty"`
	TourGuide      *string       `json:"tourGuide,omitempty"`
	GuideRequested bool          `json:"tourGuideRequested,omitempty"`

	// Derived display fields. Populated by service.NormalizeBooking.
	TouristName      string  `json:"touristName,omitempty"`
	TouristEmail     string  `json:"touristEmail,omitempty"`
	TouristPhone     string  `json:"touristPhone,omitempty"`
	ActivityName     string  `json:"activityName,omitempty"`
	ActivityLocation string  `json:"activityLocation,omitempty"`
	ActivityPrice    float64 `json:"activityPrice,omitempty"`
	PartySize        int     `json:"partySize,omitempty"`
	Total            float64 `json:"total"`
	IsToday          bool    `json:"isToday"`
}

// SameCalendarDay reports whether a and b fall on the same calendar date,
// ignoring time-of-day components. Both are compared in a's location.
func SameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
