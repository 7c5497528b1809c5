package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/service/throttle"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
)

// ApplyThrottle applies a manual throttle on behalf of a moderator and
// audits it. The moderator is recorded as the creator.
func (s *Service) ApplyThrottle(ctx context.Context, actor domain.Actor, input throttle.ApplyInput) (*ThrottleResult, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	input.CreatedBy = domain.UUIDPtr(actor.ID)

	var res ThrottleResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		th, err := s.throttles.Apply(ctx, input)
		if err != nil {
			return fmt.Errorf("apply throttle: %w", err)
		}
		res.Throttle = *th

		res.Action, err = s.record(ctx, domain.ModerationAction{
			ModeratorID:  domain.UUIDPtr(actor.ID),
			TargetUserID: domain.UUIDPtr(th.UserID),
			ActionType:   domain.ActionShadowThrottle,
			Reason:       input.Notes,
			Metadata: domain.ActionMetadata{
				Decision:      "applied",
				ThrottleID:    domain.UUIDPtr(th.ID),
				Severity:      domain.IntPtr(th.Severity),
				DurationHours: input.DurationHours,
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	telemetry.ModerationActionsTotal.WithLabelValues(string(domain.ActionShadowThrottle)).Inc()
	return &res, nil
}

// RemoveThrottle lifts a throttle early. The deletion is audited with the
// removed record's details so history survives the row.
func (s *Service) RemoveThrottle(ctx context.Context, actor domain.Actor, throttleID uuid.UUID, reason string) (*ThrottleResult, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	if len(reason) > maxReasonLength {
		return nil, domain.NewValidationError("reason", "max 1000 characters")
	}

	var res ThrottleResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		th, err := s.throttles.Remove(ctx, throttleID)
		if err != nil {
			return fmt.Errorf("remove throttle: %w", err)
		}
		res.Throttle = *th

		res.Action, err = s.record(ctx, domain.ModerationAction{
			ModeratorID:  domain.UUIDPtr(actor.ID),
			TargetUserID: domain.UUIDPtr(th.UserID),
			ActionType:   domain.ActionThrottleRemoved,
			Reason:       reason,
			Metadata: domain.ActionMetadata{
				Decision:   "removed",
				ThrottleID: domain.UUIDPtr(th.ID),
				Severity:   domain.IntPtr(th.Severity),
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	telemetry.ModerationActionsTotal.WithLabelValues(string(domain.ActionThrottleRemoved)).Inc()

	s.log.InfoContext(ctx, "throttle lifted",
		slog.String("moderator_id", actor.ID.String()),
		slog.String("throttle_id", throttleID.String()),
	)
	return &res, nil
}
