package artifact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
)

// Create posts a new artifact for actor. The true location is fuzzed once
// and the fuzzed point is what every later read sees.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.ProximityArtifact, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	content, err := input.Validate(s.cfg)
	if err != nil {
		telemetry.ArtifactCreateRejectedTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	radius := input.RadiusM
	if radius == 0 {
		radius = s.cfg.DefaultRadiusM
	}

	now := s.clock.Now()

	postedToday, err := s.artifacts.Count(ctx, domain.NewArtifactQuery(
		domain.OwnedBy(actor.ID),
		domain.OfType(input.Type),
		domain.CreatedSince(startOfUTCDay(now)),
	))
	if err != nil {
		return nil, fmt.Errorf("count daily artifacts: %w", err)
	}
	if limit := s.cfg.DailyCap(input.Type); postedToday >= limit {
		telemetry.ArtifactCreateRejectedTotal.WithLabelValues("rate_limited").Inc()
		return nil, fmt.Errorf("daily cap of %d %s artifacts reached: %w", limit, input.Type, domain.ErrRateLimited)
	}

	fuzzed, err := s.fuzzer.Fuzz(input.Location, s.cfg.FuzzMinOffsetM, s.cfg.FuzzMaxOffsetM)
	if err != nil {
		return nil, fmt.Errorf("fuzz location: %w", err)
	}

	trueLoc := input.Location
	created, err := s.artifacts.Create(ctx, domain.ProximityArtifact{
		ID:                uuid.New(),
		OwnerID:           actor.ID,
		Type:              input.Type,
		Content:           content,
		TrueLocation:      &trueLoc,
		Location:          fuzzed,
		VisibilityRadiusM: radius,
		State:             domain.ArtifactStateActive,
		CreatedAt:         now,
		ExpiresAt:         now.Add(s.cfg.TTL(input.Type)),
	})
	if err != nil {
		return nil, fmt.Errorf("create artifact: %w", err)
	}

	telemetry.ArtifactsCreatedTotal.WithLabelValues(string(created.Type)).Inc()

	s.log.InfoContext(ctx, "artifact created",
		slog.String("user_id", actor.ID.String()),
		slog.String("artifact_id", created.ID.String()),
		slog.String("type", string(created.Type)),
		slog.Time("expires_at", created.ExpiresAt),
	)

	view := created.PublicView()
	return &view, nil
}
