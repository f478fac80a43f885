package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// ViewResponse reports the active dashboard tab.
type ViewResponse struct {
	View domain.View `json:"view"`
}

// GetDashboard handles GET /api/dashboard. It serves the cached or
// last-known snapshot, triggering a full refresh only when neither exists.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dashboard.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// RefreshDashboard handles POST /api/dashboard/refresh. It forces the full
// fan-out refetch and returns the settled snapshot. Individual dataset
// failures settle empty; they never fail the request.
func (s *Server) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dashboard.Refresh(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GetView handles GET /api/dashboard/view.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ViewResponse{View: s.dashboard.View()})
}

// SetView handles PUT /api/dashboard/view.
func (s *Server) SetView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	v, err := s.dashboard.SetView(body.View)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{View: v})
}
