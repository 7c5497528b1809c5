package artifact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
)

// Flag records one report against an artifact. Reports are not deduplicated
// by reporter; the reporter is logged so repeated reports can be traced.
func (s *Service) Flag(ctx context.Context, actor domain.Actor, artifactID uuid.UUID) (*domain.ProximityArtifact, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	var res domain.FlagResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.artifacts.IncrementFlag(ctx, artifactID, s.cfg.FlagThreshold, s.clock.Now())
		if err != nil {
			return fmt.Errorf("increment flag: %w", err)
		}
		if res.Escalated && s.escalation != nil {
			if err := s.escalation.ArtifactFlagged(ctx, res.Artifact); err != nil {
				return fmt.Errorf("escalate artifact: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.ArtifactFlagsTotal.Inc()
	if res.Escalated {
		telemetry.ArtifactEscalationsTotal.Inc()
	}

	s.log.InfoContext(ctx, "artifact flagged",
		slog.String("reporter_id", actor.ID.String()),
		slog.String("artifact_id", artifactID.String()),
		slog.Int("flag_count", res.Artifact.FlagCount),
		slog.Bool("escalated", res.Escalated),
	)

	view := res.Artifact.PublicView()
	return &view, nil
}

// Remove lets the owner withdraw their own artifact. The state change and
// its owner_removal record commit together.
func (s *Service) Remove(ctx context.Context, actor domain.Actor, artifactID uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.artifacts.GetByIDForUpdate(ctx, artifactID)
		if err != nil {
			return fmt.Errorf("lock artifact: %w", err)
		}
		if a.OwnerID != actor.ID {
			return fmt.Errorf("artifact %s: %w", artifactID, domain.ErrForbidden)
		}
		if !a.State.CanTransitionTo(domain.ArtifactStateRemoved) {
			return fmt.Errorf("artifact %s: %w", artifactID, domain.ErrNotFound)
		}

		now := s.clock.Now()
		if _, err := s.artifacts.UpdateState(ctx, artifactID, domain.ArtifactStateRemoved, now); err != nil {
			return fmt.Errorf("remove artifact: %w", err)
		}

		_, err = s.actions.Create(ctx, domain.ModerationAction{
			ID:               uuid.New(),
			TargetUserID:     &a.OwnerID,
			TargetArtifactID: &a.ID,
			ActionType:       domain.ActionOwnerRemoval,
			Reason:           "withdrawn by owner",
			Metadata: domain.ActionMetadata{
				PreviousState: a.State,
				NewState:      domain.ArtifactStateRemoved,
			},
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("record owner removal: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	telemetry.ModerationActionsTotal.WithLabelValues(string(domain.ActionOwnerRemoval)).Inc()

	s.log.InfoContext(ctx, "artifact withdrawn",
		slog.String("user_id", actor.ID.String()),
		slog.String("artifact_id", artifactID.String()),
	)
	return nil
}
