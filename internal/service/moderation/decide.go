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

// decisionOutcome maps a decision onto the target state, the audit action
// type and the decision label stored in the audit metadata.
func decisionOutcome(d domain.ModerationDecision) (domain.ArtifactState, domain.ActionType, string) {
	switch d {
	case domain.DecisionApprove:
		return domain.ArtifactStateActive, domain.ActionFlagReview, "approved"
	case domain.DecisionThrottleUser:
		return domain.ArtifactStateRemoved, domain.ActionShadowThrottle, "throttled"
	case domain.DecisionBanUser:
		return domain.ArtifactStateRemoved, domain.ActionAccountBan, "banned"
	default:
		return domain.ArtifactStateRemoved, domain.ActionContentRemoval, "removed"
	}
}

// ModerateArtifact applies a moderator decision. The artifact row is locked
// for the whole transaction; the state change, any throttle and the audit
// record commit or roll back together. Decisions act on the persisted state,
// so an expired artifact can still be removed.
func (s *Service) ModerateArtifact(ctx context.Context, actor domain.Actor, artifactID uuid.UUID, input DecisionInput) (*DecisionResult, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	next, actionType, label := decisionOutcome(input.Decision)
	var res DecisionResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.artifacts.GetByIDForUpdate(ctx, artifactID)
		if err != nil {
			return fmt.Errorf("lock artifact: %w", err)
		}

		prev := a.State
		if !prev.CanTransitionTo(next) {
			return fmt.Errorf("artifact %s: %s -> %s: %w", artifactID, prev, next, domain.ErrConflict)
		}

		updated, err := s.artifacts.UpdateState(ctx, artifactID, next, s.clock.Now())
		if err != nil {
			return fmt.Errorf("update artifact state: %w", err)
		}
		res.Artifact = updated

		meta := domain.ActionMetadata{
			Decision:      label,
			PreviousState: prev,
			NewState:      next,
			FlagCount:     domain.IntPtr(a.FlagCount),
		}

		th, err := s.decisionThrottle(ctx, actor, a, input)
		if err != nil {
			return err
		}
		if th != nil {
			res.Throttle = th
			meta.ThrottleID = domain.UUIDPtr(th.ID)
			meta.Severity = domain.IntPtr(th.Severity)
			if th.ExpiresAt != nil {
				meta.DurationHours = domain.IntPtr(int(th.ExpiresAt.Sub(th.StartedAt).Hours()))
			}
		}

		res.Action, err = s.record(ctx, domain.ModerationAction{
			ModeratorID:      domain.UUIDPtr(actor.ID),
			TargetUserID:     domain.UUIDPtr(a.OwnerID),
			TargetArtifactID: domain.UUIDPtr(a.ID),
			ActionType:       actionType,
			Reason:           input.Reason,
			Metadata:         meta,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	telemetry.ModerationActionsTotal.WithLabelValues(string(actionType)).Inc()

	s.log.InfoContext(ctx, "artifact moderated",
		slog.String("moderator_id", actor.ID.String()),
		slog.String("artifact_id", artifactID.String()),
		slog.String("decision", string(input.Decision)),
		slog.String("state", string(next)),
	)

	return &res, nil
}

// decisionThrottle applies the owner throttle implied by throttle_user and
// ban_user. Other decisions return nil.
func (s *Service) decisionThrottle(ctx context.Context, actor domain.Actor, a domain.ProximityArtifact, input DecisionInput) (*domain.ShadowThrottle, error) {
	var in throttle.ApplyInput

	switch input.Decision {
	case domain.DecisionThrottleUser:
		severity := s.cfg.DefaultSeverity
		if input.ThrottleSeverity != nil {
			severity = *input.ThrottleSeverity
		}
		hours := hoursOf(s.cfg.DefaultDuration)
		if input.ThrottleDurationHours != nil {
			hours = *input.ThrottleDurationHours
		}
		in = throttle.ApplyInput{
			Reason:        domain.ThrottleReasonFlaggedContent,
			Severity:      severity,
			DurationHours: &hours,
		}
	case domain.DecisionBanUser:
		in = throttle.ApplyInput{
			Reason:   domain.ThrottleReasonManual,
			Severity: s.cfg.BanSeverity,
		}
	default:
		return nil, nil
	}

	in.UserID = a.OwnerID
	in.CreatedBy = domain.UUIDPtr(actor.ID)
	in.Notes = input.Reason

	th, err := s.throttles.Apply(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("throttle owner: %w", err)
	}
	return th, nil
}
