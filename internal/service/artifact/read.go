package artifact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// Query returns visible artifacts whose fuzzed location lies within the
// search radius, newest first. The bounding box only narrows the storage
// scan; the haversine check decides membership. Candidates are read in
// pages until the cap is filled or the box is exhausted, so newer box
// corners never hide older matches.
func (s *Service) Query(ctx context.Context, actor domain.Actor, input QueryInput) ([]domain.ProximityArtifact, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	return s.query(ctx, input, s.cfg.QueryLimit)
}

func (s *Service) query(ctx context.Context, input QueryInput, limit int) ([]domain.ProximityArtifact, error) {
	now := s.clock.Now()
	radius := float64(input.RadiusM)
	pageSize := limit * candidateFactor

	scopes := []domain.ArtifactScope{
		domain.VisibleAt(now),
		domain.WithinBox(geo.BoundingBoxAround(input.Center, radius)),
	}
	if input.Type != nil {
		scopes = append(scopes, domain.OfType(*input.Type))
	}

	out := make([]domain.ProximityArtifact, 0, limit)
	for offset := 0; ; offset += pageSize {
		q := domain.NewArtifactQuery(append(scopes, domain.Page(pageSize, offset))...)

		candidates, err := s.artifacts.Find(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("find artifacts: %w", err)
		}

		for i := range candidates {
			a := &candidates[i]
			if !q.Matches(a) || geo.DistanceMeters(input.Center, a.Location) > radius {
				continue
			}
			out = append(out, a.PublicView())
			if len(out) == limit {
				return out, nil
			}
		}
		if len(candidates) < pageSize {
			return out, nil
		}
	}
}

// Get returns a single artifact. Removed and expired artifacts read as not
// found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ProximityArtifact, error) {
	a, err := s.artifacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artifact: %w", err)
	}

	switch a.StateAt(s.clock.Now()) {
	case domain.ArtifactStateRemoved, domain.ArtifactStateExpired:
		return nil, fmt.Errorf("artifact %s: %w", id, domain.ErrNotFound)
	}

	view := a.PublicView()
	return &view, nil
}

// Feed is the throttled discovery view of Query: each artifact survives with
// probability equal to its owner's visibility multiplier. Nothing in the
// result tells a throttled owner that their content was dropped.
func (s *Service) Feed(ctx context.Context, actor domain.Actor, input QueryInput) ([]domain.ProximityArtifact, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	nearby, err := s.query(ctx, input, s.cfg.QueryLimit)
	if err != nil {
		return nil, err
	}
	if len(nearby) == 0 {
		return nearby, nil
	}

	owners := make([]uuid.UUID, 0, len(nearby))
	seen := make(map[uuid.UUID]struct{}, len(nearby))
	for _, a := range nearby {
		if _, ok := seen[a.OwnerID]; !ok {
			seen[a.OwnerID] = struct{}{}
			owners = append(owners, a.OwnerID)
		}
	}

	severities, err := s.severities.Severities(ctx, owners)
	if err != nil {
		return nil, fmt.Errorf("load owner severities: %w", err)
	}

	feed := make([]domain.ProximityArtifact, 0, min(len(nearby), s.cfg.FeedLimit))
	for _, a := range nearby {
		if s.sample() >= domain.VisibilityMultiplier(severities[a.OwnerID]) {
			continue
		}
		feed = append(feed, a)
		if len(feed) == s.cfg.FeedLimit {
			break
		}
	}
	return feed, nil
}
