package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
)

// ExportBookings handles GET /api/export, streaming the flat bookings
// export as CSV. One row per booking, assignment IDs resolved to names
// where the staff directory allows it.
func (s *Server) ExportBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Rows(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)

	cw := csv.NewWriter(w)
	record := []string{"booking_id", "tourist", "activity", "date", "status", "party_size", "total", "driver", "tour_guide"}
	if err := cw.Write(record); err != nil {
		slog.ErrorContext(r.Context(), "export write failed", "error", err)
		return
	}
	for _, row := range rows {
		record = []string{
			row.BookingID,
			row.TouristName,
			row.ActivityName,
			row.BookingDate,
			row.Status,
			strconv.Itoa(row.PartySize),
			strconv.FormatFloat(row.Total, 'f', 2, 64),
			row.Driver,
			row.TourGuide,
		}
		if err := cw.Write(record); err != nil {
			slog.ErrorContext(r.Context(), "export write failed", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(r.Context(), "export flush failed", "error", err)
	}
}
