package throttle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// EffectiveSeverity returns the maximum severity over the user's active
// throttles, or 0 if none is active. The value must never be exposed to the
// throttled user.
func (s *Service) EffectiveSeverity(ctx context.Context, userID uuid.UUID) (int, error) {
	sev, err := s.throttles.MaxActiveSeverity(ctx, userID, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("effective severity: %w", err)
	}
	return sev, nil
}

// VisibilityMultiplier returns the probability that the user's content is
// shown in discovery feeds.
func (s *Service) VisibilityMultiplier(ctx context.Context, userID uuid.UUID) (float64, error) {
	sev, err := s.EffectiveSeverity(ctx, userID)
	if err != nil {
		return 0, err
	}
	return domain.VisibilityMultiplier(sev), nil
}

// Severities returns the effective severity of every user in userIDs.
// Users without an active throttle map to 0.
func (s *Service) Severities(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	found, err := s.throttles.MaxActiveSeverities(ctx, userIDs, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("effective severities: %w", err)
	}
	for _, id := range userIDs {
		out[id] = found[id]
	}
	return out, nil
}

// Stats summarises the user's throttles. Read-only.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (domain.ThrottleStats, error) {
	now := s.clock.Now()

	total, active, err := s.throttles.CountByUser(ctx, userID, now)
	if err != nil {
		return domain.ThrottleStats{}, fmt.Errorf("count throttles: %w", err)
	}

	sev, err := s.throttles.MaxActiveSeverity(ctx, userID, now)
	if err != nil {
		return domain.ThrottleStats{}, fmt.Errorf("effective severity: %w", err)
	}

	history, err := s.throttles.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		return domain.ThrottleStats{}, fmt.Errorf("list throttles: %w", err)
	}

	return domain.ThrottleStats{
		Total:             total,
		Active:            active,
		EffectiveSeverity: sev,
		Visibility:        domain.VisibilityMultiplier(sev),
		IsThrottled:       sev > 0,
		History:           history,
	}, nil
}

// ListActive returns currently active throttles, most severe first.
func (s *Service) ListActive(ctx context.Context, limit, offset int) ([]domain.ShadowThrottle, error) {
	if limit <= 0 {
		limit = s.cfg.ActiveQueueLimit
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.throttles.ListActive(ctx, s.clock.Now(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list active throttles: %w", err)
	}
	return list, nil
}

// CountActive returns the number of active throttles across all users.
func (s *Service) CountActive(ctx context.Context) (int, error) {
	n, err := s.throttles.CountActive(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("count active throttles: %w", err)
	}
	return n, nil
}
