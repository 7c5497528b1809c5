package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// Dashboard returns the moderator overview.
func (s *Service) Dashboard(ctx context.Context, actor domain.Actor) (*domain.ModerationDashboard, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}

	var (
		d   domain.ModerationDashboard
		err error
	)

	d.FlaggedArtifacts, err = s.artifacts.Count(ctx, domain.NewArtifactQuery(domain.InState(domain.ArtifactStateFlagged)))
	if err != nil {
		return nil, fmt.Errorf("count flagged artifacts: %w", err)
	}
	d.ActiveThrottles, err = s.throttles.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	d.PendingSpoofDetections, err = s.spoofs.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	d.ActionsToday, err = s.actions.CountSince(ctx, startOfUTCDay(s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("count today's actions: %w", err)
	}
	d.RecentActions, err = s.actions.List(ctx, domain.ActionFilter{}, recentActions, 0)
	if err != nil {
		return nil, fmt.Errorf("list recent actions: %w", err)
	}

	return &d, nil
}

// FlaggedQueue lists flagged artifacts, most flagged first.
func (s *Service) FlaggedQueue(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.ProximityArtifact, int, error) {
	if err := requireModerator(actor); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = defaultQueueLimit
	}
	offset = max(offset, 0)

	flagged := domain.InState(domain.ArtifactStateFlagged)
	list, err := s.artifacts.Find(ctx, domain.NewArtifactQuery(flagged, domain.MostFlaggedFirst(), domain.Page(limit, offset)))
	if err != nil {
		return nil, 0, fmt.Errorf("list flagged artifacts: %w", err)
	}
	total, err := s.artifacts.Count(ctx, domain.NewArtifactQuery(flagged))
	if err != nil {
		return nil, 0, fmt.Errorf("count flagged artifacts: %w", err)
	}
	return list, total, nil
}

// ActionHistory lists audit records newest first together with the total
// matching filter.
func (s *Service) ActionHistory(ctx context.Context, actor domain.Actor, filter domain.ActionFilter, limit, offset int) ([]domain.ModerationAction, int, error) {
	if err := requireModerator(actor); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = defaultQueueLimit
	}
	offset = max(offset, 0)

	list, err := s.actions.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list actions: %w", err)
	}
	total, err := s.actions.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count actions: %w", err)
	}
	return list, total, nil
}

// UserProfile gathers everything a moderator needs to judge one user.
func (s *Service) UserProfile(ctx context.Context, actor domain.Actor, userID uuid.UUID) (*domain.UserModerationProfile, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}

	p := domain.UserModerationProfile{UserID: userID}
	var err error

	if p.ThrottleStats, err = s.throttles.Stats(ctx, userID); err != nil {
		return nil, err
	}
	if p.SpoofStats, err = s.spoofs.Stats(ctx, userID); err != nil {
		return nil, err
	}
	if p.TotalArtifacts, err = s.artifacts.Count(ctx, domain.NewArtifactQuery(domain.OwnedBy(userID))); err != nil {
		return nil, fmt.Errorf("count artifacts: %w", err)
	}
	p.FlaggedArtifacts, err = s.artifacts.Count(ctx, domain.NewArtifactQuery(
		domain.OwnedBy(userID),
		domain.InState(domain.ArtifactStateFlagged),
	))
	if err != nil {
		return nil, fmt.Errorf("count flagged artifacts: %w", err)
	}
	if p.RecentDetections, err = s.spoofs.Recent(ctx, userID); err != nil {
		return nil, err
	}
	p.RecentActions, err = s.actions.List(ctx, domain.ActionFilter{TargetUserID: &userID}, recentActions, 0)
	if err != nil {
		return nil, fmt.Errorf("list user actions: %w", err)
	}

	return &p, nil
}
