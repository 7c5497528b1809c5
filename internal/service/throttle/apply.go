package throttle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
)

// Apply records a new throttle. Throttles are never merged: each call adds a
// record and the effective severity is the maximum over active ones.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.ShadowThrottle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	t := domain.ShadowThrottle{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Reason:    input.Reason,
		Severity:  input.Severity,
		StartedAt: now,
		CreatedBy: input.CreatedBy,
		Notes:     input.Notes,
	}
	if input.DurationHours != nil {
		exp := now.Add(time.Duration(*input.DurationHours) * time.Hour)
		t.ExpiresAt = &exp
	}

	created, err := s.throttles.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create throttle: %w", err)
	}

	telemetry.ThrottlesAppliedTotal.WithLabelValues(string(created.Reason)).Inc()

	s.log.InfoContext(ctx, "throttle applied",
		slog.String("user_id", created.UserID.String()),
		slog.String("throttle_id", created.ID.String()),
		slog.String("reason", string(created.Reason)),
		slog.Int("severity", created.Severity),
		slog.Bool("permanent", created.IsPermanent()),
	)

	return &created, nil
}

// Remove deletes a throttle and returns the deleted record.
func (s *Service) Remove(ctx context.Context, throttleID uuid.UUID) (*domain.ShadowThrottle, error) {
	if throttleID == uuid.Nil {
		return nil, domain.NewValidationError("throttle_id", "required")
	}

	deleted, err := s.throttles.Delete(ctx, throttleID)
	if err != nil {
		return nil, fmt.Errorf("delete throttle: %w", err)
	}

	s.log.InfoContext(ctx, "throttle removed",
		slog.String("user_id", deleted.UserID.String()),
		slog.String("throttle_id", deleted.ID.String()),
	)

	return &deleted, nil
}

// AutoThrottleForFlags applies the highest schedule tier whose flag count
// the user has reached. Returns nil when no tier applies.
func (s *Service) AutoThrottleForFlags(ctx context.Context, userID uuid.UUID, flaggedCount int) (*domain.ShadowThrottle, error) {
	tier, ok := s.tierFor(flaggedCount)
	if !ok {
		return nil, nil
	}

	hours := int(tier.Duration / time.Hour)
	if hours < 1 {
		hours = 1
	}

	return s.Apply(ctx, ApplyInput{
		UserID:        userID,
		Reason:        domain.ThrottleReasonFlaggedContent,
		Severity:      tier.Severity,
		DurationHours: &hours,
		Notes:         fmt.Sprintf("Auto-throttle: %d flags", flaggedCount),
	})
}

// tierFor relies on AutoSchedule being sorted by ascending MinFlagged.
func (s *Service) tierFor(flaggedCount int) (tier config.AutoThrottleTier, ok bool) {
	for _, t := range s.cfg.AutoSchedule {
		if flaggedCount >= t.MinFlagged {
			tier, ok = t, true
		}
	}
	return tier, ok
}
