package moderation

import (
	"fmt"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

const maxReasonLength = 1000

// DecisionInput is a moderator's verdict on an artifact. Throttle overrides
// only apply to the throttle_user decision.
type DecisionInput struct {
	Decision              domain.ModerationDecision
	Reason                string
	ThrottleSeverity      *int
	ThrottleDurationHours *int
}

// Validate checks all fields and collects all errors.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "invalid value"})
	}
	if len(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	if i.ThrottleSeverity != nil &&
		(*i.ThrottleSeverity < domain.MinThrottleSeverity || *i.ThrottleSeverity > domain.MaxThrottleSeverity) {
		errs = append(errs, domain.FieldError{
			Field:   "throttle_severity",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinThrottleSeverity, domain.MaxThrottleSeverity),
		})
	}
	if i.ThrottleDurationHours != nil &&
		(*i.ThrottleDurationHours <= 0 || *i.ThrottleDurationHours > domain.MaxThrottleDurationHours) {
		errs = append(errs, domain.FieldError{
			Field:   "throttle_duration_hours",
			Message: fmt.Sprintf("must be between 1 and %d", domain.MaxThrottleDurationHours),
		})
	}

	return domain.ValidationErrorFrom(errs)
}

// SpoofReviewInput is a moderator's verdict on a geo-spoof detection.
// ApplyThrottle is only honoured on confirm.
type SpoofReviewInput struct {
	Action        domain.SpoofReviewAction
	Reason        string
	ApplyThrottle bool
}

// Validate checks all fields and collects all errors.
func (i SpoofReviewInput) Validate() error {
	var errs []domain.FieldError

	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "invalid value"})
	}
	if len(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	return domain.ValidationErrorFrom(errs)
}

// DecisionResult is everything a moderation decision changed.
type DecisionResult struct {
	Artifact domain.ProximityArtifact
	Action   domain.ModerationAction
	Throttle *domain.ShadowThrottle
}

// ReviewResult is everything a spoof review changed.
type ReviewResult struct {
	Detection domain.GeoSpoofDetection
	Action    domain.ModerationAction
	Throttle  *domain.ShadowThrottle
}

// ThrottleResult pairs a throttle change with its audit record.
type ThrottleResult struct {
	Throttle domain.ShadowThrottle
	Action   domain.ModerationAction
}
