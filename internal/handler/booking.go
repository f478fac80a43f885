package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// BookingListResponse wraps the booking list so the payload shape can grow
// without breaking clients.
type BookingListResponse struct {
	Data []domain.Booking `json:"data"`
}

// ListBookings handles GET /api/bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BookingListResponse{Data: bookings})
}

// UpdateBookingStatus handles PATCH /api/bookings/{id}/status.
func (s *Server) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	if body.Status == "" {
		requestError(w, "status is required")
		return
	}

	if err := s.bookings.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteBooking handles DELETE /api/bookings/{id}.
// The booking disappears from the dashboard only after the backend
// confirms the delete; a failed delete changes nothing.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := s.bookings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
