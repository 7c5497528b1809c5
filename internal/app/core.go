package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/adapter/postgres"
	artifactrepo "github.com/heartmarshall/proximity-backend/internal/adapter/postgres/artifact"
	moderationrepo "github.com/heartmarshall/proximity-backend/internal/adapter/postgres/moderation"
	spoofrepo "github.com/heartmarshall/proximity-backend/internal/adapter/postgres/spoof"
	throttlerepo "github.com/heartmarshall/proximity-backend/internal/adapter/postgres/throttle"
	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/provider"
	"github.com/heartmarshall/proximity-backend/internal/service/artifact"
	"github.com/heartmarshall/proximity-backend/internal/service/moderation"
	"github.com/heartmarshall/proximity-backend/internal/service/spoof"
	"github.com/heartmarshall/proximity-backend/internal/service/throttle"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// Database is what the core needs from PostgreSQL. *pgxpool.Pool satisfies it.
type Database interface {
	postgres.Querier
	postgres.Beginner
}

// IPLocator resolves an IP address to an approximate location.
type IPLocator interface {
	Locate(ctx context.Context, ip string) (*provider.IPLocation, error)
}

// Core is the callable surface of the proximity trust-and-safety core.
// Transports call Core; nothing below it knows about them.
type Core struct {
	artifacts  *artifact.Service
	throttles  *throttle.Service
	spoofs     *spoof.Service
	moderation *moderation.Service
}

// NewCore wires repositories and services over db. locator may be a nil
// interface, in which case spoof checks run without an IP location; never
// pass a typed nil pointer.
func NewCore(log *slog.Logger, db Database, locator IPLocator, cfg *config.Config, clock domain.Clock) *Core {
	txm := postgres.NewTxManager(db)

	artifacts := artifactrepo.New(db)
	actions := moderationrepo.New(db)
	detections := spoofrepo.New(db)
	throttles := throttlerepo.New(db)

	throttleSvc := throttle.NewService(log, throttles, cfg.Throttle, clock)
	spoofSvc := spoof.NewService(log, detections, locator, cfg.Spoof, clock)
	moderationSvc := moderation.NewService(
		log, artifacts, detections, actions, throttleSvc, spoofSvc, txm,
		cfg.Throttle, cfg.Artifact.AutoThrottle(), clock,
	)
	artifactSvc := artifact.NewService(
		log, artifacts, actions, throttleSvc, moderationSvc, txm,
		geo.NewFuzzer(nil), cfg.Artifact, clock,
	)

	return &Core{
		artifacts:  artifactSvc,
		throttles:  throttleSvc,
		spoofs:     spoofSvc,
		moderation: moderationSvc,
	}
}

// ---------------------------------------------------------------------------
// Artifacts
// ---------------------------------------------------------------------------

// CreateArtifact posts a new artifact at a fuzzed location.
func (c *Core) CreateArtifact(ctx context.Context, actor domain.Actor, input artifact.CreateInput) (*domain.ProximityArtifact, error) {
	return c.artifacts.Create(ctx, actor, input)
}

// QueryArtifacts lists visible artifacts within a radius, newest first.
func (c *Core) QueryArtifacts(ctx context.Context, actor domain.Actor, input artifact.QueryInput) ([]domain.ProximityArtifact, error) {
	return c.artifacts.Query(ctx, actor, input)
}

// Feed is QueryArtifacts with throttled owners sampled out.
func (c *Core) Feed(ctx context.Context, actor domain.Actor, input artifact.QueryInput) ([]domain.ProximityArtifact, error) {
	return c.artifacts.Feed(ctx, actor, input)
}

// GetArtifact returns one visible artifact.
func (c *Core) GetArtifact(ctx context.Context, id uuid.UUID) (*domain.ProximityArtifact, error) {
	return c.artifacts.Get(ctx, id)
}

// FlagArtifact reports an artifact; crossing the threshold escalates it.
func (c *Core) FlagArtifact(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ProximityArtifact, error) {
	return c.artifacts.Flag(ctx, actor, id)
}

// RemoveArtifact withdraws the actor's own artifact.
func (c *Core) RemoveArtifact(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	return c.artifacts.Remove(ctx, actor, id)
}

// ---------------------------------------------------------------------------
// Moderation
// ---------------------------------------------------------------------------

func (c *Core) ModerateArtifact(ctx context.Context, actor domain.Actor, id uuid.UUID, input moderation.DecisionInput) (*moderation.DecisionResult, error) {
	return c.moderation.ModerateArtifact(ctx, actor, id, input)
}

func (c *Core) ApplyThrottle(ctx context.Context, actor domain.Actor, input throttle.ApplyInput) (*moderation.ThrottleResult, error) {
	return c.moderation.ApplyThrottle(ctx, actor, input)
}

func (c *Core) RemoveThrottle(ctx context.Context, actor domain.Actor, throttleID uuid.UUID, reason string) (*moderation.ThrottleResult, error) {
	return c.moderation.RemoveThrottle(ctx, actor, throttleID, reason)
}

func (c *Core) ReviewSpoofDetection(ctx context.Context, actor domain.Actor, id uuid.UUID, input moderation.SpoofReviewInput) (*moderation.ReviewResult, error) {
	return c.moderation.ReviewSpoofDetection(ctx, actor, id, input)
}

func (c *Core) Dashboard(ctx context.Context, actor domain.Actor) (*domain.ModerationDashboard, error) {
	return c.moderation.Dashboard(ctx, actor)
}

func (c *Core) FlaggedQueue(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.ProximityArtifact, int, error) {
	return c.moderation.FlaggedQueue(ctx, actor, limit, offset)
}

func (c *Core) ActionHistory(ctx context.Context, actor domain.Actor, filter domain.ActionFilter, limit, offset int) ([]domain.ModerationAction, int, error) {
	return c.moderation.ActionHistory(ctx, actor, filter, limit, offset)
}

func (c *Core) UserProfile(ctx context.Context, actor domain.Actor, userID uuid.UUID) (*domain.UserModerationProfile, error) {
	return c.moderation.UserProfile(ctx, actor, userID)
}

// ---------------------------------------------------------------------------
// Throttles
// ---------------------------------------------------------------------------

// EffectiveSeverity is the highest active throttle severity for userID, 0
// when unthrottled. It is an internal query and takes no actor; throttles
// are never revealed to the throttled user.
func (c *Core) EffectiveSeverity(ctx context.Context, userID uuid.UUID) (int, error) {
	return c.throttles.EffectiveSeverity(ctx, userID)
}

// ThrottleStats summarises a user's throttles for moderators.
func (c *Core) ThrottleStats(ctx context.Context, actor domain.Actor, userID uuid.UUID) (*domain.ThrottleStats, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	stats, err := c.throttles.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ActiveThrottles lists unexpired throttles for moderators.
func (c *Core) ActiveThrottles(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.ShadowThrottle, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	return c.throttles.ListActive(ctx, limit, offset)
}

// ---------------------------------------------------------------------------
// Geo-spoof detection
// ---------------------------------------------------------------------------

// DetectSpoof scores one reported location and persists the detection.
func (c *Core) DetectSpoof(ctx context.Context, input spoof.DetectInput) (*domain.GeoSpoofDetection, error) {
	return c.spoofs.Detect(ctx, input)
}

// ObserveLocation resolves the IP and the previous detection itself before
// scoring.
func (c *Core) ObserveLocation(ctx context.Context, userID uuid.UUID, reported geo.Point, ipAddress string) (*domain.GeoSpoofDetection, error) {
	return c.spoofs.ObserveLocation(ctx, userID, reported, ipAddress)
}

// SpoofStats summarises a user's detections for moderators.
func (c *Core) SpoofStats(ctx context.Context, actor domain.Actor, userID uuid.UUID) (*domain.SpoofStats, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	stats, err := c.spoofs.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// SpoofReviewQueue lists unreviewed high-risk detections, highest score first.
func (c *Core) SpoofReviewQueue(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.GeoSpoofDetection, error) {
	if err := requireModerator(actor); err != nil {
		return nil, err
	}
	return c.spoofs.ReviewQueue(ctx, limit, offset)
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

// PruneResult reports what a retention pass deleted.
type PruneResult struct {
	Artifacts int64
	Throttles int64
}

// PruneExpired deletes expired artifacts and throttles older than their
// retention. It is meant for a scheduled job; reads never depend on it.
func (c *Core) PruneExpired(ctx context.Context, cfg config.RetentionConfig) (PruneResult, error) {
	var res PruneResult
	var err error

	if res.Artifacts, err = c.artifacts.PruneExpired(ctx, cfg.ExpiredArtifacts); err != nil {
		return res, err
	}
	if res.Throttles, err = c.throttles.PruneExpired(ctx, cfg.ExpiredThrottles); err != nil {
		return res, err
	}
	return res, nil
}
