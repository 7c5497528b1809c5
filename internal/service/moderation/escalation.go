package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
)

// ArtifactFlagged records the automatic active -> flagged transition. It
// runs inside the caller's flag transaction. With auto-throttling enabled
// the owner's flagged artifacts are counted and the progressive schedule may
// add a throttle with its own audit record.
func (s *Service) ArtifactFlagged(ctx context.Context, a domain.ProximityArtifact) error {
	_, err := s.record(ctx, domain.ModerationAction{
		TargetUserID:     domain.UUIDPtr(a.OwnerID),
		TargetArtifactID: domain.UUIDPtr(a.ID),
		ActionType:       domain.ActionAutoFlag,
		Reason:           "flag threshold reached",
		Metadata: domain.ActionMetadata{
			PreviousState: domain.ArtifactStateActive,
			NewState:      domain.ArtifactStateFlagged,
			FlagCount:     domain.IntPtr(a.FlagCount),
		},
	})
	if err != nil {
		return err
	}
	telemetry.ModerationActionsTotal.WithLabelValues(string(domain.ActionAutoFlag)).Inc()

	if !s.autoThrottle {
		return nil
	}

	flagged, err := s.artifacts.Count(ctx, domain.NewArtifactQuery(
		domain.OwnedBy(a.OwnerID),
		domain.InState(domain.ArtifactStateFlagged),
	))
	if err != nil {
		return fmt.Errorf("count flagged artifacts: %w", err)
	}

	th, err := s.throttles.AutoThrottleForFlags(ctx, a.OwnerID, flagged)
	if err != nil {
		return fmt.Errorf("auto-throttle owner: %w", err)
	}
	if th == nil {
		return nil
	}

	meta := domain.ActionMetadata{
		FlagCount:  domain.IntPtr(flagged),
		ThrottleID: domain.UUIDPtr(th.ID),
		Severity:   domain.IntPtr(th.Severity),
	}
	if th.ExpiresAt != nil {
		meta.DurationHours = domain.IntPtr(int(th.ExpiresAt.Sub(th.StartedAt).Hours()))
	}
	if _, err := s.record(ctx, domain.ModerationAction{
		TargetUserID:     domain.UUIDPtr(a.OwnerID),
		TargetArtifactID: domain.UUIDPtr(a.ID),
		ActionType:       domain.ActionAutoThrottle,
		Reason:           th.Notes,
		Metadata:         meta,
	}); err != nil {
		return err
	}
	telemetry.ModerationActionsTotal.WithLabelValues(string(domain.ActionAutoThrottle)).Inc()

	s.log.WarnContext(ctx, "owner auto-throttled",
		slog.String("user_id", a.OwnerID.String()),
		slog.Int("flagged_artifacts", flagged),
		slog.Int("severity", th.Severity),
	)
	return nil
}
