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

// ReviewSpoofDetection confirms or dismisses a detection. Dismissal keeps
// the original score and only takes the detection out of the queue. A
// detection can be reviewed once.
func (s *Service) ReviewSpoofDetection(ctx context.Context, actor domain.Actor, detectionID uuid.UUID, input SpoofReviewInput) (*ReviewResult, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		res        ReviewResult
		actionType domain.ActionType
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		d, err := s.detections.GetByIDForUpdate(ctx, detectionID)
		if err != nil {
			return fmt.Errorf("lock detection: %w", err)
		}
		if d.IsConfirmedSpoof || d.Dismissed {
			return fmt.Errorf("detection %s already reviewed: %w", detectionID, domain.ErrConflict)
		}

		meta := domain.ActionMetadata{
			Decision:       string(input.Action),
			DetectionID:    domain.UUIDPtr(d.ID),
			SuspicionScore: domain.IntPtr(d.SuspicionScore),
		}

		switch input.Action {
		case domain.SpoofReviewConfirm:
			actionType = domain.ActionGeoSpoofConfirm
			res.Detection, err = s.detections.MarkConfirmed(ctx, detectionID)
			if err != nil {
				return fmt.Errorf("confirm detection: %w", err)
			}
			meta.ThrottleApplied = domain.BoolPtr(input.ApplyThrottle)

			if input.ApplyThrottle {
				hours := hoursOf(s.cfg.SpoofDuration)
				th, err := s.throttles.Apply(ctx, throttle.ApplyInput{
					UserID:        d.UserID,
					Reason:        domain.ThrottleReasonGeoSpoof,
					Severity:      s.cfg.SpoofSeverity,
					DurationHours: &hours,
					CreatedBy:     domain.UUIDPtr(actor.ID),
					Notes:         input.Reason,
				})
				if err != nil {
					return fmt.Errorf("throttle spoofer: %w", err)
				}
				res.Throttle = th
				meta.ThrottleID = domain.UUIDPtr(th.ID)
				meta.Severity = domain.IntPtr(th.Severity)
				meta.DurationHours = &hours
			}
		default:
			actionType = domain.ActionGeoSpoofDismiss
			res.Detection, err = s.detections.MarkDismissed(ctx, detectionID, s.clock.Now())
			if err != nil {
				return fmt.Errorf("dismiss detection: %w", err)
			}
		}

		res.Action, err = s.record(ctx, domain.ModerationAction{
			ModeratorID:  domain.UUIDPtr(actor.ID),
			TargetUserID: domain.UUIDPtr(d.UserID),
			ActionType:   actionType,
			Reason:       input.Reason,
			Metadata:     meta,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	telemetry.ModerationActionsTotal.WithLabelValues(string(actionType)).Inc()

	s.log.InfoContext(ctx, "spoof detection reviewed",
		slog.String("moderator_id", actor.ID.String()),
		slog.String("detection_id", detectionID.String()),
		slog.String("action", string(input.Action)),
		slog.Bool("throttled", res.Throttle != nil),
	)
	return &res, nil
}
