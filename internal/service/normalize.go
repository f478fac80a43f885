package service

import (
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// Fallback display values for bookings whose customer link is missing and
// whose notes carry nothing usable.
const (
	fallbackName     = "Anonymous"
	fallbackEmail    = "No email"
	fallbackPhone    = "No phone"
	fallbackActivity = "Unknown Activity"
)

// NormalizeBooking fills the derived display fields of b and returns it.
//
// Each field follows a fixed fallback chain: populated sub-object first,
// then the pipe-delimited notes blob, then a constant default. The function
// is idempotent — a derived field that is already populated is never
// overwritten — so re-normalizing an already-normalized booking is a no-op.
// IsToday is recomputed from today on every call, which keeps the flag
// correct for a booking normalized yesterday and redisplayed now.
func NormalizeBooking(b domain.Booking, today time.Time) domain.Booking {
	notes := domain.ParseBookingNotes(b.Notes)

	if b.TouristName == "" {
		switch {
		case b.Customer != nil && b.Customer.Name != "":
			b.TouristName = b.Customer.Name
		case notes.Customer != "":
			b.TouristName = notes.Customer
		default:
			b.TouristName = fallbackName
		}
	}
	if b.TouristEmail == "" {
		switch {
		case b.Customer != nil && b.Customer.Email != "":
			b.TouristEmail = b.Customer.Email
		case notes.Email != "":
			b.TouristEmail = notes.Email
		default:
			b.TouristEmail = fallbackEmail
		}
	}
	if b.TouristPhone == "" {
		switch {
		case b.Customer != nil && b.Customer.Phone != "":
			b.TouristPhone = b.Customer.Phone
		case notes.Phone != "":
			b.TouristPhone = notes.Phone
		default:
			b.TouristPhone = fallbackPhone
		}
	}

	if b.ActivityName == "" {
		switch {
		case b.Activity != nil && b.Activity.Name != "":
			b.ActivityName = b.Activity.Name
		case notes.Activity != "":
			b.ActivityName = notes.Activity
		default:
			b.ActivityName = fallbackActivity
		}
	}
	if b.ActivityLocation == "" && b.Activity != nil {
		b.ActivityLocation = b.Activity.Location
	}
	if b.ActivityPrice == 0 && b.Activity != nil {
		b.ActivityPrice = b.Activity.Price
	}

	if b.PartySize == 0 {
		switch {
		case b.Participants > 0:
			b.PartySize = b.Participants
		case b.NumberOfPeople > 0:
			b.PartySize = b.NumberOfPeople
		case b.GroupSize > 0:
			b.PartySize = b.GroupSize
		default:
			b.PartySize = 1
		}
	}
	if b.Total == 0 {
		switch {
		case b.TotalAmount != 0:
			b.Total = b.TotalAmount
		default:
			b.Total = b.TotalPrice
		}
	}

	b.Status = domain.ParseBookingStatus(string(b.Status))
	b.IsToday = domain.SameCalendarDay(b.BookingDate, today)

	return b
}
