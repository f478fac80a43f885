package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/observability"
	"github.com/jmwanyama/safari-ops/internal/upstream"
)

// Refresher triggers a full dashboard refresh after a committed assignment.
// Satisfied by *DashboardService.
type Refresher interface {
	Refresh(ctx context.Context) (domain.Snapshot, error)
}

// editor is the transient staging area for one booking's proposed
// assignment. It lives only in memory and is discarded on close or after a
// successful commit — it never reaches the backend directly.
type editor struct {
	bookingID     string
	preferredDate time.Time
	driver        *string
	guide         *string

	// clientRef is minted once per editor session so a commit retried
	// after a failure reuses it, keeping the best-effort tour create safe
	// to repeat.
	clientRef string
}

// AssignmentService holds the open assignment editor and runs the commit
// workflow:
//
//	Idle → Saving → (TourCreateAttempt) → BookingUpdate → Refreshing → Idle|Error
//
// Tour creation is best-effort; the booking update is the primary write and
// the only step that can fail the commit. After a successful update the
// whole dashboard is refetched rather than patched, so the UI always shows
// authoritative backend state.
type AssignmentService struct {
	bookings  upstream.BookingClient
	tours     upstream.TourClient
	refresher Refresher
	log       *slog.Logger

	// settle is how long to wait after the booking update before the full
	// refetch, giving backend-side consistency a moment to catch up.
	settle time.Duration

	mu sync.Mutex
	ed *editor
}

// NewAssignmentService constructs an AssignmentService with no open editor.
func NewAssignmentService(bookings upstream.BookingClient, tours upstream.TourClient, refresher Refresher, log *slog.Logger, settle time.Duration) *AssignmentService {
	if log == nil {
		log = slog.Default()
	}
	return &AssignmentService{
		bookings:  bookings,
		tours:     tours,
		refresher: refresher,
		log:       log,
		settle:    settle,
	}
}

// Open starts (or restarts) the editor for a booking, seeding the selection
// from the booking's currently persisted assignment. Opening repeatedly
// without saving always yields the persisted state, never leftovers from an
// abandoned edit.
func (s *AssignmentService) Open(ctx context.Context, bookingID string) (domain.AssignmentSelection, error) {
	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return domain.AssignmentSelection{}, fmt.Errorf("service.AssignmentService.Open: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed = &editor{
		bookingID:     b.ID,
		preferredDate: b.PreferredDate,
		driver:        copyID(b.Driver),
		guide:         copyID(b.TourGuide),
		clientRef:     uuid.NewString(),
	}
	return domain.AssignmentSelection{Driver: copyID(s.ed.driver), TourGuide: copyID(s.ed.guide)}, nil
}

// SetDriver records the proposed driver. nil is the explicit "no driver"
// choice. Returns domain.ErrValidation when no editor is open.
func (s *AssignmentService) SetDriver(id *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ed == nil {
		return fmt.Errorf("service.AssignmentService.SetDriver: %w: no booking open", domain.ErrValidation)
	}
	s.ed.driver = copyID(id)
	return nil
}

// SetGuide records the proposed guide. nil is the explicit "no guide" choice.
func (s *AssignmentService) SetGuide(id *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ed == nil {
		return fmt.Errorf("service.AssignmentService.SetGuide: %w: no booking open", domain.ErrValidation)
	}
	s.ed.guide = copyID(id)
	return nil
}

// Close discards all edits with no backend effect.
func (s *AssignmentService) Close() {
	s.mu.Lock()
	s.ed = nil
	s.mu.Unlock()
}

// Commit runs the save workflow for the open editor.
//
// If a driver is selected, a tour record is created first — best-effort: on
// failure the error is logged, counted, and surfaced as a warning in the
// result, never as a failed commit. The booking update follows regardless
// and is authoritative: if it fails, Commit returns the error, performs no
// refresh, and leaves the editor open so the officer can retry. After a
// successful update Commit waits the settle delay, triggers a full dashboard
// refresh, and closes the editor.
func (s *AssignmentService) Commit(ctx context.Context) (domain.AssignmentResult, error) {
	s.mu.Lock()
	ed := s.ed
	s.mu.Unlock()
	if ed == nil {
		return domain.AssignmentResult{}, fmt.Errorf("service.AssignmentService.Commit: %w: no booking open", domain.ErrValidation)
	}

	res, err := s.commit(ctx, ed)
	if err != nil {
		return domain.AssignmentResult{}, err
	}

	s.mu.Lock()
	if s.ed == ed {
		s.ed = nil
	}
	s.mu.Unlock()
	return res, nil
}

// commit runs the tour-create / booking-update / refresh sequence for ed.
// ed is owned by the caller: the shared editor for Commit, a per-request
// value for Assign.
func (s *AssignmentService) commit(ctx context.Context, ed *editor) (domain.AssignmentResult, error) {
	res := domain.AssignmentResult{BookingID: ed.bookingID}

	if ed.driver != nil {
		req := domain.TourRequest{
			Booking:       ed.bookingID,
			PreferredDate: ed.preferredDate,
			TourGuide:     copyID(ed.guide),
			Driver:        *ed.driver,
			Notes:         "Created from booking assignment",
			ClientRef:     ed.clientRef,
		}
		if _, err := s.tours.Create(ctx, req); err != nil {
			observability.TourCreateFailures.Inc()
			s.log.Warn("tour creation failed, continuing with booking update",
				"booking", ed.bookingID, "error", err)
			res.Warning = "tour record could not be created; the assignment was still saved"
		} else {
			res.TourCreated = true
		}
	}

	sel := domain.AssignmentSelection{Driver: copyID(ed.driver), TourGuide: copyID(ed.guide)}
	if err := s.bookings.UpdateAssignment(ctx, ed.bookingID, sel); err != nil {
		observability.AssignmentCommits.WithLabelValues("failed").Inc()
		return domain.AssignmentResult{}, fmt.Errorf("service.AssignmentService.Commit: %w", err)
	}

	s.waitSettle(ctx)
	if _, err := s.refresher.Refresh(ctx); err != nil {
		// Refresh settles datasets individually; an error here means the
		// refresh could not run at all. The commit itself already stuck.
		s.log.Error("post-commit refresh failed", "booking", ed.bookingID, "error", err)
	}

	observability.AssignmentCommits.WithLabelValues("committed").Inc()

	res.Message = "Assignment saved."
	if res.TourCreated {
		res.Message = "Assignment saved. Tour record created."
		res.NextView = domain.ViewTours
	}
	return res, nil
}

// Assign is the one-request form used by the HTTP surface: stage a private
// editor for the booking and commit it in one step. The editor is local to
// the request, so concurrent assignments — and any editor left open via
// Open — cannot see or disturb each other's selections.
func (s *AssignmentService) Assign(ctx context.Context, bookingID string, sel domain.AssignmentSelection) (domain.AssignmentResult, error) {
	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return domain.AssignmentResult{}, fmt.Errorf("service.AssignmentService.Assign: %w", err)
	}
	ed := &editor{
		bookingID:     b.ID,
		preferredDate: b.PreferredDate,
		driver:        copyID(sel.Driver),
		guide:         copyID(sel.TourGuide),
		clientRef:     uuid.NewString(),
	}
	return s.commit(ctx, ed)
}

// waitSettle sleeps for the configured settle delay, returning early if the
// request context is cancelled.
func (s *AssignmentService) waitSettle(ctx context.Context) {
	if s.settle <= 0 {
		return
	}
	t := time.NewTimer(s.settle)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// copyID clones an optional ID so editor state never aliases caller memory.
func copyID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
