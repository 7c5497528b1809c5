package spoof

import (
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// DetectInput carries one location report. IPLocation and Previous are
// optional: without them the corresponding rules stay silent. IPProxy and
// IPHosting are what the IP provider reported about the address.
type DetectInput struct {
	UserID         uuid.UUID
	Reported       geo.Point
	IPLocation     *geo.Point
	IPProxy        bool
	IPHosting      bool
	Previous       *geo.Point
	ElapsedSeconds float64
	IPAddress      string
}

// Validate checks all fields and collects all errors.
func (i DetectInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if err := i.Reported.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "reported", Message: err.Error()})
	}
	if i.IPLocation != nil {
		if err := i.IPLocation.Validate(); err != nil {
			errs = append(errs, domain.FieldError{Field: "ip_location", Message: err.Error()})
		}
	}
	if i.Previous != nil {
		if err := i.Previous.Validate(); err != nil {
			errs = append(errs, domain.FieldError{Field: "previous", Message: err.Error()})
		}
	}
	if math.IsNaN(i.ElapsedSeconds) || i.ElapsedSeconds < 0 {
		errs = append(errs, domain.FieldError{Field: "elapsed_seconds", Message: "must not be negative"})
	}

	return domain.ValidationErrorFrom(errs)
}
