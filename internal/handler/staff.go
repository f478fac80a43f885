package handler

import (
	"net/http"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// StaffResponse carries the two disjoint assignable lists.
type StaffResponse struct {
	Drivers []domain.StaffMember `json:"drivers"`
	Guides  []domain.StaffMember `json:"guides"`
}

// ListStaff handles GET /api/staff?date=2006-01-02.
//
// With a date, each member's availability flag is scoped to that calendar
// day; without one it is the global flag. A refresh failure is not a
// request failure: the previous lists are still served (stale-but-present),
// the error having been logged by the directory.
func (s *Server) ListStaff(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			requestError(w, "date must be formatted as 2006-01-02")
			return
		}
		date = parsed
	}

	_ = s.staff.Refresh(r.Context(), date)

	writeJSON(w, http.StatusOK, StaffResponse{
		Drivers: s.staff.Drivers(),
		Guides:  s.staff.Guides(),
	})
}
