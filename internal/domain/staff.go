package domain

// StaffRole is the role tag the staff endpoint reports for each person.
// Only drivers and tour guides are assignable to bookings; every other role
// (office staff, wildlife officers, vets) is filtered out locally.
type StaffRole string

const (
	RoleDriver StaffRole = "driver"
	RoleGuide  StaffRole = "tourGuide"
)

// StaffMember represents a person assignable to a booking.
//
// Available is date-scoped: a staff list fetched for a specific date carries
// availability on that date, a list fetched with the zero date carries the
// person's global flag. The flag is informational only — assignment of an
// unavailable member is allowed and left to the officer's judgement.
type StaffMember struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      StaffRole `json:"role"`
	Available bool      `json:"isAvailable"`
}

// FullName returns "First Last", tolerating an empty half.
func (m StaffMember) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	default:
		return m.FirstName + " " + m.LastName
	}
}
