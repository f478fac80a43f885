package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmwanyama/safari-ops/internal/upstream"
)

// Invalidator drops stale dashboard state after a mutation.
// Satisfied by *DashboardService.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// OpsService handles the operator actions on the secondary datasets:
// complaints, job applications, fuel claims, and visitor feedback. Each
// mutation is a thin passthrough to upstream followed by a snapshot
// invalidation, so the next dashboard read reflects the change.
type OpsService struct {
	complaints   upstream.ComplaintClient
	applications upstream.ApplicationClient
	fuelClaims   upstream.FuelClaimClient
	feedback     upstream.FeedbackClient
	dash         Invalidator
	log          *slog.Logger
}

// NewOpsService constructs an OpsService.
func NewOpsService(
	complaints upstream.ComplaintClient,
	applications upstream.ApplicationClient,
	fuelClaims upstream.FuelClaimClient,
	feedback upstream.FeedbackClient,
	dash Invalidator,
	log *slog.Logger,
) *OpsService {
	if log == nil {
		log = slog.Default()
	}
	return &OpsService{
		complaints:   complaints,
		applications: applications,
		fuelClaims:   fuelClaims,
		feedback:     feedback,
		dash:         dash,
		log:          log,
	}
}

// UpdateComplaint sets a complaint's status.
func (s *OpsService) UpdateComplaint(ctx context.Context, id, status string) error {
	if err := s.complaints.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("service.OpsService.UpdateComplaint: %w", err)
	}
	s.dash.Invalidate(ctx)
	return nil
}

// DeleteComplaint removes a complaint.
func (s *OpsService) DeleteComplaint(ctx context.Context, id string) error {
	if err := s.complaints.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.OpsService.DeleteComplaint: %w", err)
	}
	s.dash.Invalidate(ctx)
	return nil
}

// UpdateApplication sets a job application's status.
func (s *OpsService) UpdateApplication(ctx context.Context, id, status string) error {
	if err := s.applications.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("service.OpsService.UpdateApplication: %w", err)
	}
	s.dash.Invalidate(ctx)
	return nil
}

// UpdateFuelClaim sets a fuel claim's status.
func (s *OpsService) UpdateFuelClaim(ctx context.Context, id, status string) error {
	if err := s.fuelClaims.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("service.OpsService.UpdateFuelClaim: %w", err)
	}
	s.dash.Invalidate(ctx)
	return nil
}

// ReplyFeedback attaches an officer reply to a feedback entry.
func (s *OpsService) ReplyFeedback(ctx context.Context, id, reply string) error {
	if err := s.feedback.Reply(ctx, id, reply); err != nil {
		return fmt.Errorf("service.OpsService.ReplyFeedback: %w", err)
	}
	s.dash.Invalidate(ctx)
	return nil
}

// DeleteFeedback removes a feedback entry.
func (s *OpsService) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.feedback.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.OpsService.DeleteFeedback: %w", err)
	}
	s.dash.Invalidate(ctx)
	return nil
}
