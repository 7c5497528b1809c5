package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// Now returns the current UTC time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedArtifact inserts an active chat artifact at (40, -73) owned by a fresh
// user. opts adjust the row before insertion.
func SeedArtifact(t *testing.T, pool *pgxpool.Pool, opts ...func(*domain.ProximityArtifact)) domain.ProximityArtifact {
	t.Helper()

	now := Now()
	a := domain.ProximityArtifact{
		ID:                uuid.New(),
		OwnerID:           uuid.New(),
		Type:              domain.ArtifactTypeChat,
		Content:           "seeded artifact",
		TrueLocation:      &geo.Point{Lat: 40, Lng: -73},
		Location:          geo.Point{Lat: 40.0005, Lng: -73.0005},
		VisibilityRadiusM: 1000,
		State:             domain.ArtifactStateActive,
		CreatedAt:         now,
		ExpiresAt:         now.Add(time.Hour),
	}
	for _, opt := range opts {
		opt(&a)
	}
	if a.State == domain.ArtifactStateRemoved && a.RemovedAt == nil {
		removed := now
		a.RemovedAt = &removed
	}
	trueLoc := a.Location
	if a.TrueLocation != nil {
		trueLoc = *a.TrueLocation
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO proximity_artifacts
		   (id, owner_id, type, content, true_lat, true_lng, lat, lng, visibility_radius_m,
		    state, flag_count, flagged_at, created_at, expires_at, removed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.OwnerID, string(a.Type), a.Content, trueLoc.Lat, trueLoc.Lng, a.Location.Lat, a.Location.Lng,
		a.VisibilityRadiusM, string(a.State), a.FlagCount, a.FlaggedAt, a.CreatedAt, a.ExpiresAt, a.RemovedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArtifact: %v", err)
	}
	return a
}

// SeedThrottle inserts a throttle for userID that started a minute ago.
// A nil duration seeds a permanent throttle.
func SeedThrottle(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, severity int, duration *time.Duration) domain.ShadowThrottle {
	t.Helper()

	started := Now().Add(-time.Minute)
	th := domain.ShadowThrottle{
		ID:        uuid.New(),
		UserID:    userID,
		Reason:    domain.ThrottleReasonManual,
		Severity:  severity,
		StartedAt: started,
	}
	if duration != nil {
		exp := started.Add(*duration)
		th.ExpiresAt = &exp
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO shadow_throttles (id, user_id, reason, severity, started_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		th.ID, th.UserID, string(th.Reason), th.Severity, th.StartedAt, th.ExpiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedThrottle: %v", err)
	}
	return th
}

// SeedDetection inserts a detection for userID with the given score.
func SeedDetection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, score int, detectedAt time.Time) domain.GeoSpoofDetection {
	t.Helper()

	d := domain.GeoSpoofDetection{
		ID:             uuid.New(),
		UserID:         userID,
		Reported:       geo.Point{Lat: 52.52, Lng: 13.405},
		SuspicionScore: score,
		Flags:          []string{},
		DetectedAt:     detectedAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO geo_spoof_detections (id, user_id, reported_lat, reported_lng, suspicion_score, flags, detected_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.UserID, d.Reported.Lat, d.Reported.Lng, d.SuspicionScore, d.Flags, d.DetectedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDetection: %v", err)
	}
	return d
}

// SeedAction inserts a moderation action directly.
func SeedAction(t *testing.T, pool *pgxpool.Pool, actionType domain.ActionType, targetUserID *uuid.UUID, createdAt time.Time) domain.ModerationAction {
	t.Helper()

	a := domain.ModerationAction{
		ID:           uuid.New(),
		TargetUserID: targetUserID,
		ActionType:   actionType,
		CreatedAt:    createdAt,
	}
	meta, _ := json.Marshal(a.Metadata)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO moderation_actions (id, target_user_id, action_type, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.TargetUserID, string(a.ActionType), meta, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAction: %v", err)
	}
	return a
}
