package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinThrottleSeverity = 1
	MaxThrottleSeverity = 5

	// MaxThrottleDurationHours is ten years. Longer bans are permanent
	// throttles; the bound also keeps hours*time.Hour inside int64.
	MaxThrottleDurationHours = 87_600
)

// ShadowThrottle is a covert, time-bound restriction on a user's visibility.
type ShadowThrottle struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Reason    ThrottleReason
	Severity  int
	StartedAt time.Time
	ExpiresAt *time.Time // nil = permanent until removed
	CreatedBy *uuid.UUID // nil for automatic throttles
	Notes     string
}

// IsPermanent reports whether the throttle has no expiry.
func (t *ShadowThrottle) IsPermanent() bool {
	return t.ExpiresAt == nil
}

// IsActiveAt reports whether the throttle is in force at now.
func (t *ShadowThrottle) IsActiveAt(now time.Time) bool {
	if now.Before(t.StartedAt) {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}

// VisibilityMultiplier maps a severity to the share of impressions the
// user's content keeps. Severity 0 means no active throttle.
func VisibilityMultiplier(severity int) float64 {
	switch {
	case severity <= 0:
		return 1.0
	case severity == 1:
		return 0.70
	case severity == 2:
		return 0.50
	case severity == 3:
		return 0.30
	case severity == 4:
		return 0.15
	default:
		return 0.05
	}
}

// ThrottleStats summarises a user's throttle history for moderators.
type ThrottleStats struct {
	Total             int
	Active            int
	EffectiveSeverity int
	Visibility        float64
	IsThrottled       bool
	History           []ShadowThrottle
}
