package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor is the authenticated identity performing an operation. It is passed
// explicitly to every operation; the core never reads it from ambient state.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
}

// NewUserActor returns an Actor with the regular user role.
func NewUserActor(id uuid.UUID) Actor {
	return Actor{ID: id, Role: UserRoleUser}
}

// NewModeratorActor returns an Actor with the moderator role.
func NewModeratorActor(id uuid.UUID) Actor {
	return Actor{ID: id, Role: UserRoleModerator}
}

// IsAuthenticated reports whether the actor carries an identity.
func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil
}

// IsModerator reports whether the actor may take moderation decisions.
func (a Actor) IsModerator() bool {
	return a.IsAuthenticated() && a.Role.CanModerate()
}

// Clock supplies the current time. Production code uses SystemClock; tests
// inject a fixed or advancing clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
