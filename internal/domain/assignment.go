package domain

// AssignmentSelection is the (driver, guide) pair an officer proposes for a
// booking. A nil pointer is the explicit "none" state: committing it clears
// the corresponding reference on the booking. That is distinct from a field
// the officer never touched, which keeps whatever the booking already had —
// the editor tracks touched state, this type carries only the final values.
type AssignmentSelection struct {
	Driver    *string `json:"driver"`
	TourGuide *string `json:"tourGuide"`
}

// AssignmentResult summarizes a committed assignment.
//
// TourCreated is false both when no driver was selected (no tour is wanted)
// and when the best-effort create failed; Warning distinguishes the two.
// NextView is the dashboard view the UI should switch to, empty for "stay".
type AssignmentResult struct {
	BookingID   string `json:"bookingId"`
	TourCreated bool   `json:"tourCreated"`
	Warning     string `json:"warning,omitempty"`
	Message     string `json:"message"`
	NextView    View   `json:"nextView,omitempty"`
}
