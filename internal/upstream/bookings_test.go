package upstream_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/upstream"
	"github.com/jmwanyama/safari-ops/testutil"
)

func newClient(f *testutil.FakeUpstream) *upstream.Client {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return upstream.New(f.URL(), 5*time.Second, log)
}

func TestBookingClient_List_UnwrapsEnvelope(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/bookings", http.StatusOK,
		`{"data":{"data":{"bookings":[{"_id":"b1","status":"pending"},{"_id":"b2"}]}}}`)
	bookings := upstream.NewBookingClient(newClient(f))

	got, err := bookings.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, domain.BookingStatus("pending"), got[0].Status)
}

func TestBookingClient_List_UnrecognizedEnvelopeYieldsEmpty(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/bookings", http.StatusOK, `{"surprise":true}`)
	bookings := upstream.NewBookingClient(newClient(f))

	got, err := bookings.List(context.Background())

	// Fail soft: a shape we cannot probe is an empty list, not an error.
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBookingClient_List_SkipsMalformedRecords(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/bookings", http.StatusOK,
		`{"data":{"bookings":[{"_id":"good"},"not a booking"]}}`)
	bookings := upstream.NewBookingClient(newClient(f))

	got, err := bookings.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)
}

func TestBookingClient_List_ForwardsBearerToken(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/bookings", http.StatusOK, `[]`)
	bookings := upstream.NewBookingClient(newClient(f))

	ctx := upstream.WithToken(context.Background(), "tok-123")
	_, err := bookings.List(ctx)

	require.NoError(t, err)
	reqs := f.RequestsTo(http.MethodGet, "/api/bookings")
	require.Len(t, reqs, 1)
	assert.Equal(t, "tok-123", reqs[0].Bearer)
}

func TestBookingClient_List_NoTokenNoHeader(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/bookings", http.StatusOK, `[]`)
	bookings := upstream.NewBookingClient(newClient(f))

	_, err := bookings.List(context.Background())

	require.NoError(t, err)
	reqs := f.RequestsTo(http.MethodGet, "/api/bookings")
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Bearer)
}

func TestBookingClient_Get_NotFound(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	bookings := upstream.NewBookingClient(newClient(f))

	_, err := bookings.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingClient_Get_UnwrapsObject(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/bookings/b1", http.StatusOK,
		`{"data":{"_id":"b1","participants":3}}`)
	bookings := upstream.NewBookingClient(newClient(f))

	got, err := bookings.Get(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, 3, got.Participants)
}

func TestBookingClient_UpdateAssignment_SendsExplicitNulls(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodPut, "/api/bookings/b1", http.StatusOK, `{}`)
	bookings := upstream.NewBookingClient(newClient(f))

	err := bookings.UpdateAssignment(context.Background(), "b1", domain.AssignmentSelection{})

	require.NoError(t, err)
	reqs := f.RequestsTo(http.MethodPut, "/api/bookings/b1")
	require.Len(t, reqs, 1)
	// Clearing an assignment must serialize nulls, not omit the fields.
	assert.JSONEq(t, `{"driver":null,"tourGuide":null}`, string(reqs[0].Body))
}

func TestBookingClient_UpdateAssignment_SendsSelectedIDs(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodPut, "/api/bookings/b1", http.StatusOK, `{}`)
	bookings := upstream.NewBookingClient(newClient(f))

	d, g := "d1", "g1"
	err := bookings.UpdateAssignment(context.Background(), "b1", domain.AssignmentSelection{
		Driver:    &d,
		TourGuide: &g,
	})

	require.NoError(t, err)
	reqs := f.RequestsTo(http.MethodPut, "/api/bookings/b1")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"driver":"d1","tourGuide":"g1"}`, string(reqs[0].Body))
}

func TestBookingClient_UpdateStatus_ServerError(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodPut, "/api/bookings/b1", http.StatusInternalServerError, `{"error":"boom"}`)
	bookings := upstream.NewBookingClient(newClient(f))

	err := bookings.UpdateStatus(context.Background(), "b1", domain.StatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestStaffClient_List_FallsBackToUsersKey(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/staff", http.StatusOK,
		`{"data":{"users":[{"_id":"s1","role":"driver","isAvailable":true}]}}`)
	staff := upstream.NewStaffClient(newClient(f))

	got, err := staff.List(context.Background(), upstream.StaffQuery{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.RoleDriver, got[0].Role)
	assert.True(t, got[0].Available)
}

func TestStaffClient_List_DateQueryParam(t *testing.T) {
	f := testutil.NewFakeUpstream(t)
	f.Respond(http.MethodGet, "/api/staff", http.StatusOK, `[]`)
	staff := upstream.NewStaffClient(newClient(f))

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	_, err := staff.List(context.Background(), upstream.StaffQuery{Role: domain.RoleDriver, Date: date})

	require.NoError(t, err)
	reqs := f.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/staff", reqs[0].Path)
	assert.Contains(t, reqs[0].Query, "role=driver")
	assert.Contains(t, reqs[0].Query, "date=2026-09-14")
}
