package handler_test

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/handler"
)

func TestExportBookings_200_CSV(t *testing.T) {
	svc := &mockExportServicer{
		rows: func(_ context.Context) ([]domain.ExportRow, error) {
			return []domain.ExportRow{
				{
					BookingID:    "b1",
					TouristName:  "Alice",
					ActivityName: "Game Drive",
					BookingDate:  "2026-09-14",
					Status:       "confirmed",
					PartySize:    4,
					Total:        1200.50,
					Driver:       "Joseph Mwangi",
					TourGuide:    "",
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(handler.Deps{Export: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"booking_id", "tourist", "activity", "date", "status",
		"party_size", "total", "driver", "tour_guide"}, records[0])
	assert.Equal(t, []string{"b1", "Alice", "Game Drive", "2026-09-14", "confirmed",
		"4", "1200.50", "Joseph Mwangi", ""}, records[1])
}

func TestExportBookings_502(t *testing.T) {
	svc := &mockExportServicer{
		rows: func(_ context.Context) ([]domain.ExportRow, error) {
			return nil, fmt.Errorf("service.ExportService.Rows: %w", domain.ErrUpstream)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(handler.Deps{Export: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
