// Package throttle implements the shadow throttle engine: covert, stackable
// visibility reductions applied to users.
package throttle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// historyLimit caps the throttle history returned by Stats.
const historyLimit = 50

type throttleRepo interface {
	Create(ctx context.Context, t domain.ShadowThrottle) (domain.ShadowThrottle, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.ShadowThrottle, error)
	MaxActiveSeverity(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	MaxActiveSeverities(ctx context.Context, userIDs []uuid.UUID, now time.Time) (map[uuid.UUID]int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ShadowThrottle, error)
	ListActive(ctx context.Context, now time.Time, limit, offset int) ([]domain.ShadowThrottle, error)
	CountByUser(ctx context.Context, userID uuid.UUID, now time.Time) (total, active int, err error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service applies, removes and evaluates shadow throttles.
type Service struct {
	throttles throttleRepo
	cfg       config.ThrottleConfig
	clock     domain.Clock
	log       *slog.Logger
}

// NewService creates a new throttle service.
func NewService(
	log *slog.Logger,
	throttles throttleRepo,
	cfg config.ThrottleConfig,
	clock domain.Clock,
) *Service {
	return &Service{
		throttles: throttles,
		cfg:       cfg,
		clock:     clock,
		log:       log.With("service", "throttle"),
	}
}
