package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// AssignBooking handles PUT /api/bookings/{id}/assignment.
//
// The body must carry both fields; an explicit JSON null clears the
// corresponding reference on the booking:
//
//	{"driver": "<staff id>" | null, "tourGuide": "<staff id>" | null}
//
// A 200 response means the booking update stuck. The result's warning field
// is set when the best-effort tour creation failed — that is not an error
// status, because the primary effect succeeded.
func (s *Server) AssignBooking(w http.ResponseWriter, r *http.Request) {
	var sel domain.AssignmentSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		requestError(w, "request body is required")
		return
	}

	result, err := s.assignments.Assign(r.Context(), chi.URLParam(r, "id"), sel)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
