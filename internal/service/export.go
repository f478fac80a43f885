package service

import (
	"context"
	"fmt"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// StaffNamer resolves staff IDs to display names for the export.
// Satisfied by *StaffDirectory.
type StaffNamer interface {
	Drivers() []domain.StaffMember
	Guides() []domain.StaffMember
}

// ExportService assembles the flat bookings export: one row per booking
// with assignment references resolved to staff names where possible.
type ExportService struct {
	bookings BookingLister
	staff    StaffNamer
}

// NewExportService constructs an ExportService.
func NewExportService(bookings BookingLister, staff StaffNamer) *ExportService {
	return &ExportService{bookings: bookings, staff: staff}
}

// Rows returns one ExportRow per booking. Assignment IDs that the staff
// directory cannot resolve are emitted as the raw ID rather than dropped.
func (s *ExportService) Rows(ctx context.Context) ([]domain.ExportRow, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Rows: %w", err)
	}

	names := map[string]string{}
	for _, m := range s.staff.Drivers() {
		names[m.ID] = m.FullName()
	}
	for _, m := range s.staff.Guides() {
		names[m.ID] = m.FullName()
	}
	resolve := func(id *string) string {
		if id == nil {
			return ""
		}
		if name, ok := names[*id]; ok && name != "" {
			return name
		}
		return *id
	}

	rows := make([]domain.ExportRow, len(bookings))
	for i, b := range bookings {
		rows[i] = domain.ExportRow{
			BookingID:    b.ID,
			TouristName:  b.TouristName,
			ActivityName: b.ActivityName,
			BookingDate:  b.BookingDate.Format("2006-01-02"),
			Status:       string(b.Status),
			PartySize:    b.PartySize,
			Total:        b.Total,
			Driver:       resolve(b.Driver),
			TourGuide:    resolve(b.TourGuide),
		}
	}
	return rows, nil
}
