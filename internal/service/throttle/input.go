package throttle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

const maxNotesLength = 1000

// ApplyInput holds the parameters for applying a throttle. A nil
// DurationHours makes the throttle permanent.
type ApplyInput struct {
	UserID        uuid.UUID
	Reason        domain.ThrottleReason
	Severity      int
	DurationHours *int
	CreatedBy     *uuid.UUID
	Notes         string
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Reason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "invalid value"})
	}
	if i.Severity < domain.MinThrottleSeverity || i.Severity > domain.MaxThrottleSeverity {
		errs = append(errs, domain.FieldError{
			Field:   "severity",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinThrottleSeverity, domain.MaxThrottleSeverity),
		})
	}
	if i.DurationHours != nil && (*i.DurationHours <= 0 || *i.DurationHours > domain.MaxThrottleDurationHours) {
		errs = append(errs, domain.FieldError{
			Field:   "duration_hours",
			Message: fmt.Sprintf("must be between 1 and %d", domain.MaxThrottleDurationHours),
		})
	}
	if len(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	return domain.ValidationErrorFrom(errs)
}
