package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmwanyama/safari-ops/internal/domain"
	"github.com/jmwanyama/safari-ops/internal/upstream"
)

// StaffDirectory tracks the assignable drivers and guides.
//
// Availability is date-scoped: Refresh with a date annotates each member's
// flag for that calendar day; the zero date yields the global flag. There is
// deliberately a single fetch path for both cases.
//
// A failed refresh keeps the previously loaded lists — stale-but-present is
// preferred over empty, because an officer mid-assignment loses nothing from
// a slightly old directory but everything from a blank one. No retries.
type StaffDirectory struct {
	staff upstream.StaffClient
	log   *slog.Logger

	mu      sync.RWMutex
	drivers []domain.StaffMember
	guides  []domain.StaffMember
}

// NewStaffDirectory constructs an empty StaffDirectory.
func NewStaffDirectory(staff upstream.StaffClient, log *slog.Logger) *StaffDirectory {
	if log == nil {
		log = slog.Default()
	}
	return &StaffDirectory{
		staff:   staff,
		log:     log,
		drivers: []domain.StaffMember{},
		guides:  []domain.StaffMember{},
	}
}

// Refresh fetches the staff list and splits it locally into drivers and
// guides by role tag; every other role is excluded. The backend may return
// all staff regardless of the query filters, so the local split is
// authoritative. On failure the previous lists stay in place and the error
// is returned for the caller to log or surface.
func (d *StaffDirectory) Refresh(ctx context.Context, date time.Time) error {
	members, err := d.staff.List(ctx, upstream.StaffQuery{Date: date})
	if err != nil {
		d.log.Error("staff refresh failed, keeping previous lists", "error", err)
		return fmt.Errorf("service.StaffDirectory.Refresh: %w", err)
	}

	drivers := []domain.StaffMember{}
	guides := []domain.StaffMember{}
	for _, m := range members {
		switch m.Role {
		case domain.RoleDriver:
			drivers = append(drivers, m)
		case domain.RoleGuide:
			guides = append(guides, m)
		}
	}

	d.mu.Lock()
	d.drivers = drivers
	d.guides = guides
	d.mu.Unlock()
	return nil
}

// Drivers returns the last successfully loaded driver list.
func (d *StaffDirectory) Drivers() []domain.StaffMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.drivers
}

// Guides returns the last successfully loaded guide list.
func (d *StaffDirectory) Guides() []domain.StaffMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.guides
}
