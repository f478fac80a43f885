package domain

import "time"

// Tour is the operational record created once a driver (and optionally a
// guide) is confirmed for a booking. It is created lazily, at the moment an
// officer saves an assignment that includes a driver, and at most once per
// commit attempt.
type Tour struct {
	ID            string    `json:"_id"`
	Booking       string    `json:"booking"`
	PreferredDate time.Time `json:"preferredDate"`
	TourGuide     *string   `json:"tourGuide,omitempty"` // nil when no guide assigned
	Driver        string    `json:"driver"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// TourRequest is the create payload sent to the tours endpoint.
//
// ClientRef is generated once per editor session and reused on retries, so a
// retried best-effort create cannot produce a duplicate tour even though the
// first attempt's outcome is unknown.
type TourRequest struct {
	Booking       string    `json:"booking"`
	PreferredDate time.Time `json:"preferredDate"`
	TourGuide     *string   `json:"tourGuide"`
	Driver        string    `json:"driver"`
	Notes         string    `json:"notes,omitempty"`
	ClientRef     string    `json:"clientRef"`
}
