// Package spoof scores the plausibility of user-reported locations and keeps
// the per-user detection history moderators review.
package spoof

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/provider"
)

const (
	defaultQueueLimit = 50
	recentLimit       = 20
)

type detectionRepo interface {
	Create(ctx context.Context, d domain.GeoSpoofDetection) (domain.GeoSpoofDetection, error)
	ListByUser(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]domain.GeoSpoofDetection, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	Counts(ctx context.Context, userID uuid.UUID, threshold int) (domain.SpoofCounts, error)
	ListPending(ctx context.Context, threshold, limit, offset int) ([]domain.GeoSpoofDetection, error)
	CountPending(ctx context.Context, threshold int) (int, error)
}

type ipLocator interface {
	Locate(ctx context.Context, ip string) (*provider.IPLocation, error)
}

// Service implements the geo-spoof detector.
type Service struct {
	log        *slog.Logger
	detections detectionRepo
	locator    ipLocator
	cfg        config.SpoofConfig
	clock      domain.Clock
}

// NewService creates a new spoof service. locator may be nil when IP
// geolocation is disabled; the IP distance rules then never trigger.
func NewService(log *slog.Logger, detections detectionRepo, locator ipLocator, cfg config.SpoofConfig, clock domain.Clock) *Service {
	return &Service{
		log:        log.With("service", "spoof"),
		detections: detections,
		locator:    locator,
		cfg:        cfg,
		clock:      clock,
	}
}
