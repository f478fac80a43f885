package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// statusBody decodes the common {"status": "..."} mutation payload.
func statusBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return "", false
	}
	if body.Status == "" {
		requestError(w, "status is required")
		return "", false
	}
	return body.Status, true
}

// UpdateComplaint handles PATCH /api/complaints/{id}/status.
func (s *Server) UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	status, ok := statusBody(w, r)
	if !ok {
		return
	}
	if err := s.ops.UpdateComplaint(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteComplaint handles DELETE /api/complaints/{id}.
func (s *Server) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	if err := s.ops.DeleteComplaint(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateApplication handles PATCH /api/applications/{id}/status.
func (s *Server) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	status, ok := statusBody(w, r)
	if !ok {
		return
	}
	if err := s.ops.UpdateApplication(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateFuelClaim handles PATCH /api/fuel-claims/{id}/status.
func (s *Server) UpdateFuelClaim(w http.ResponseWriter, r *http.Request) {
	status, ok := statusBody(w, r)
	if !ok {
		return
	}
	if err := s.ops.UpdateFuelClaim(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplyFeedback handles POST /api/feedback/{id}/reply.
func (s *Server) ReplyFeedback(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	if body.Reply == "" {
		requestError(w, "reply is required")
		return
	}
	if err := s.ops.ReplyFeedback(r.Context(), chi.URLParam(r, "id"), body.Reply); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteFeedback handles DELETE /api/feedback/{id}.
func (s *Server) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if err := s.ops.DeleteFeedback(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
