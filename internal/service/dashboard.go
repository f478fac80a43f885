package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/observability"
	"github.com/jmwanyama/safari-ops/internal/upstream"
)

// BookingLister is the slice of BookingService the dashboard needs.
type BookingLister interface {
	List(ctx context.Context) ([]domain.Booking, error)
}

// GuideSource is the slice of StaffDirectory the dashboard needs for its
// guides dataset.
type GuideSource interface {
	Refresh(ctx context.Context, date time.Time) error
	Guides() []domain.StaffMember
}

// DashboardService owns the aggregate dashboard state: the active view and
// the snapshot of every dataset the tabs render.
//
// Refresh is a fan-out/fan-in: every dataset is fetched concurrently and
// each settles independently — a failed fetch logs, counts a metric, and
// leaves that dataset empty without failing the others. Derived stats are
// computed only after all fetches settle, so aggregate counts are never a
// mix of old and new data.
type DashboardService struct {
	bookings     BookingLister
	tours        upstream.TourClient
	complaints   upstream.ComplaintClient
	applications upstream.ApplicationClient
	fuelClaims   upstream.FuelClaimClient
	feedback     upstream.FeedbackClient
	donations    upstream.DonationClient
	guides       GuideSource
	cache        *SnapshotCache
	log          *slog.Logger

	mu      sync.RWMutex
	current domain.Snapshot
	loaded  bool
	view    domain.View
}

// DashboardDeps bundles the dataset sources for NewDashboardService; the
// list is long enough that positional arguments invite wiring mistakes.
type DashboardDeps struct {
	Bookings     BookingLister
	Tours        upstream.TourClient
	Complaints   upstream.ComplaintClient
	Applications upstream.ApplicationClient
	FuelClaims   upstream.FuelClaimClient
	Feedback     upstream.FeedbackClient
	Donations    upstream.DonationClient
	Guides       GuideSource
	Cache        *SnapshotCache
	Log          *slog.Logger
}

// NewDashboardService constructs a DashboardService starting on the
// overview tab with no data loaded.
func NewDashboardService(deps DashboardDeps) *DashboardService {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	return &DashboardService{
		bookings:     deps.Bookings,
		tours:        deps.Tours,
		complaints:   deps.Complaints,
		applications: deps.Applications,
		fuelClaims:   deps.FuelClaims,
		feedback:     deps.Feedback,
		donations:    deps.Donations,
		guides:       deps.Guides,
		cache:        deps.Cache,
		log:          log,
		view:         domain.ViewOverview,
	}
}

// Refresh fetches every dashboard dataset concurrently, waits for all to
// settle, computes stats, swaps the snapshot in, and re-primes the cache.
// It never fails as a whole: individual fetch failures degrade to empty
// datasets.
func (s *DashboardService) Refresh(ctx context.Context) (domain.Snapshot, error) {
	start := time.Now()
	snap := domain.Snapshot{
		Bookings:     []domain.Booking{},
		Tours:        []domain.Tour{},
		Complaints:   []domain.Complaint{},
		Applications: []domain.Application{},
		FuelClaims:   []domain.FuelClaim{},
		Feedback:     []domain.Feedback{},
		Donations:    []domain.Donation{},
		Guides:       []domain.StaffMember{},
	}

	var wg sync.WaitGroup
	settle := func(dataset string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				observability.DatasetFetchFailures.WithLabelValues(dataset).Inc()
				s.log.Error("dashboard dataset fetch failed, settling empty",
					"dataset", dataset, "error", err)
			}
		}()
	}

	// Each closure writes a distinct snapshot field, so no locking is
	// needed until the swap below.
	settle("bookings", func() error {
		v, err := s.bookings.List(ctx)
		if err != nil {
			return err
		}
		snap.Bookings = v
		return nil
	})
	settle("tours", func() error {
		v, err := s.tours.List(ctx)
		if err != nil {
			return err
		}
		snap.Tours = v
		return nil
	})
	settle("complaints", func() error {
		v, err := s.complaints.List(ctx)
		if err != nil {
			return err
		}
		snap.Complaints = v
		return nil
	})
	settle("applications", func() error {
		v, err := s.applications.List(ctx)
		if err != nil {
			return err
		}
		snap.Applications = v
		return nil
	})
	settle("fuelClaims", func() error {
		v, err := s.fuelClaims.List(ctx)
		if err != nil {
			return err
		}
		snap.FuelClaims = v
		return nil
	})
	settle("feedback", func() error {
		v, err := s.feedback.List(ctx)
		if err != nil {
			return err
		}
		snap.Feedback = v
		return nil
	})
	settle("donations", func() error {
		v, err := s.donations.List(ctx)
		if err != nil {
			return err
		}
		snap.Donations = v
		return nil
	})
	settle("guides", func() error {
		// A failed refresh keeps the directory's previous lists, which
		// are still the best available data for the snapshot.
		err := s.guides.Refresh(ctx, time.Time{})
		snap.Guides = s.guides.Guides()
		return err
	})

	wg.Wait()

	snap.ComputeStats()
	snap.RefreshedAt = time.Now().UTC()

	s.mu.Lock()
	s.current = snap
	s.loaded = true
	s.mu.Unlock()

	s.cache.Set(ctx, snap)
	observability.DashboardRefreshDuration.Observe(time.Since(start).Seconds())
	return snap, nil
}

// Snapshot returns the current dashboard data: cache first, then the last
// in-memory snapshot, and a full Refresh only when neither exists or the
// snapshot was invalidated.
func (s *DashboardService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if snap, ok := s.cache.Get(ctx); ok {
		return snap, nil
	}

	s.mu.RLock()
	snap, loaded := s.current, s.loaded
	s.mu.RUnlock()
	if loaded {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Invalidate drops both the cached and the in-memory snapshot so the next
// read reloads from upstream. Called after any mutation.
func (s *DashboardService) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx)
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
}

// View returns the active dashboard tab.
func (s *DashboardService) View() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetView switches the active tab. Unknown names are rejected with
// domain.ErrValidation.
func (s *DashboardService) SetView(name string) (domain.View, error) {
	v, ok := domain.ParseView(name)
	if !ok {
		return "", fmt.Errorf("service.DashboardService.SetView: %w: unknown view %q", domain.ErrValidation, name)
	}
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	return v, nil
}
