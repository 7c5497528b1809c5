package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/service/throttle"
)

const (
	defaultQueueLimit = 50
	recentActions     = 20
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type artifactRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.ProximityArtifact, error)
	UpdateState(ctx context.Context, id uuid.UUID, state domain.ArtifactState, now time.Time) (domain.ProximityArtifact, error)
	Find(ctx context.Context, q domain.ArtifactQuery) ([]domain.ProximityArtifact, error)
	Count(ctx context.Context, q domain.ArtifactQuery) (int, error)
}

type detectionRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.GeoSpoofDetection, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID) (domain.GeoSpoofDetection, error)
	MarkDismissed(ctx context.Context, id uuid.UUID, now time.Time) (domain.GeoSpoofDetection, error)
}

type actionRepo interface {
	Create(ctx context.Context, a domain.ModerationAction) (domain.ModerationAction, error)
	List(ctx context.Context, f domain.ActionFilter, limit, offset int) ([]domain.ModerationAction, error)
	Count(ctx context.Context, f domain.ActionFilter) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

type throttleEngine interface {
	Apply(ctx context.Context, input throttle.ApplyInput) (*domain.ShadowThrottle, error)
	Remove(ctx context.Context, throttleID uuid.UUID) (*domain.ShadowThrottle, error)
	AutoThrottleForFlags(ctx context.Context, userID uuid.UUID, flaggedCount int) (*domain.ShadowThrottle, error)
	Stats(ctx context.Context, userID uuid.UUID) (domain.ThrottleStats, error)
	CountActive(ctx context.Context) (int, error)
}

type spoofReader interface {
	Stats(ctx context.Context, userID uuid.UUID) (domain.SpoofStats, error)
	CountPending(ctx context.Context) (int, error)
	Recent(ctx context.Context, userID uuid.UUID) ([]domain.GeoSpoofDetection, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the moderation workflow. Every state change it makes is
// committed together with exactly one ModerationAction.
type Service struct {
	log          *slog.Logger
	artifacts    artifactRepo
	detections   detectionRepo
	actions      actionRepo
	throttles    throttleEngine
	spoofs       spoofReader
	tx           txManager
	cfg          config.ThrottleConfig
	autoThrottle bool
	clock        domain.Clock
}

// NewService creates a new moderation service. autoThrottle enables the
// progressive throttle applied when an artifact is auto-flagged.
func NewService(
	log *slog.Logger,
	artifacts artifactRepo,
	detections detectionRepo,
	actions actionRepo,
	throttles throttleEngine,
	spoofs spoofReader,
	tx txManager,
	cfg config.ThrottleConfig,
	autoThrottle bool,
	clock domain.Clock,
) *Service {
	return &Service{
		log:          log.With("service", "moderation"),
		artifacts:    artifacts,
		detections:   detections,
		actions:      actions,
		throttles:    throttles,
		spoofs:       spoofs,
		tx:           tx,
		cfg:          cfg,
		autoThrottle: autoThrottle,
		clock:        clock,
	}
}

func requireModerator(actor domain.Actor) error {
	if !actor.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !actor.IsModerator() {
		return domain.ErrForbidden
	}
	return nil
}

// record writes an audit entry stamped with the service clock.
func (s *Service) record(ctx context.Context, a domain.ModerationAction) (domain.ModerationAction, error) {
	a.ID = uuid.New()
	a.CreatedAt = s.clock.Now()
	created, err := s.actions.Create(ctx, a)
	if err != nil {
		return domain.ModerationAction{}, fmt.Errorf("record %s: %w", a.ActionType, err)
	}
	return created, nil
}

func hoursOf(d time.Duration) int {
	return max(1, int(d/time.Hour))
}

func startOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
