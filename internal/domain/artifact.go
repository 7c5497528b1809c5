package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// ProximityArtifact is an ephemeral content item visible within a radius of
// its fuzzed location. TrueLocation never leaves the process in JSON.
type ProximityArtifact struct {
	ID                uuid.UUID     `json:"id"`
	OwnerID           uuid.UUID     `json:"owner_id"`
	Type              ArtifactType  `json:"type"`
	Content           string        `json:"content"`
	TrueLocation      *geo.Point    `json:"-"`
	Location          geo.Point     `json:"location"`
	VisibilityRadiusM int           `json:"visibility_radius_m"`
	State             ArtifactState `json:"state"`
	FlagCount         int           `json:"flag_count"`
	FlaggedAt         *time.Time    `json:"flagged_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	ExpiresAt         time.Time     `json:"expires_at"`
	RemovedAt         *time.Time    `json:"removed_at,omitempty"`
}

// IsExpired reports whether the artifact's TTL has elapsed at now.
func (a *ProximityArtifact) IsExpired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// StateAt returns the effective state at now: the persisted state, except
// that a non-removed artifact past its TTL reads as Expired.
func (a *ProximityArtifact) StateAt(now time.Time) ArtifactState {
	if a.State == ArtifactStateRemoved {
		return ArtifactStateRemoved
	}
	if a.IsExpired(now) {
		return ArtifactStateExpired
	}
	return a.State
}

// IsVisibleAt reports whether the artifact may appear in reads at now.
func (a *ProximityArtifact) IsVisibleAt(now time.Time) bool {
	return a.StateAt(now) == ArtifactStateActive
}

// PublicView returns a copy with the true location stripped.
func (a ProximityArtifact) PublicView() ProximityArtifact {
	a.TrueLocation = nil
	return a
}

// ArtifactQuery is the conjunction of predicates used to look up artifacts.
// Zero-valued fields do not constrain the result.
type ArtifactQuery struct {
	VisibleAt    *time.Time
	Box          *geo.BoundingBox
	Type         *ArtifactType
	OwnerID      *uuid.UUID
	States       []ArtifactState
	CreatedSince *time.Time
	Limit        int
	Offset       int
	OrderByFlags bool
}

// ArtifactScope narrows an ArtifactQuery. Scopes compose by conjunction.
type ArtifactScope func(*ArtifactQuery)

// NewArtifactQuery applies scopes in order.
func NewArtifactQuery(scopes ...ArtifactScope) ArtifactQuery {
	var q ArtifactQuery
	for _, s := range scopes {
		s(&q)
	}
	return q
}

// VisibleAt keeps active, non-expired artifacts.
func VisibleAt(now time.Time) ArtifactScope {
	return func(q *ArtifactQuery) {
		q.VisibleAt = &now
		q.States = []ArtifactState{ArtifactStateActive}
	}
}

// WithinBox keeps artifacts whose fuzzed location lies inside box.
func WithinBox(box geo.BoundingBox) ArtifactScope {
	return func(q *ArtifactQuery) { q.Box = &box }
}

// OfType keeps artifacts of type t.
func OfType(t ArtifactType) ArtifactScope {
	return func(q *ArtifactQuery) { q.Type = &t }
}

// OwnedBy keeps artifacts created by ownerID.
func OwnedBy(ownerID uuid.UUID) ArtifactScope {
	return func(q *ArtifactQuery) { q.OwnerID = &ownerID }
}

// InState keeps artifacts whose persisted state is one of states.
func InState(states ...ArtifactState) ArtifactScope {
	return func(q *ArtifactQuery) { q.States = states }
}

// CreatedSince keeps artifacts created at or after t.
func CreatedSince(t time.Time) ArtifactScope {
	return func(q *ArtifactQuery) { q.CreatedSince = &t }
}

// Page caps the result and skips offset rows.
func Page(limit, offset int) ArtifactScope {
	return func(q *ArtifactQuery) {
		q.Limit = limit
		q.Offset = offset
	}
}

// MostFlaggedFirst orders by flag count before recency.
func MostFlaggedFirst() ArtifactScope {
	return func(q *ArtifactQuery) { q.OrderByFlags = true }
}

// Matches evaluates the query predicates against a single artifact. It is
// the in-memory twin of the SQL the repository builds.
func (q ArtifactQuery) Matches(a *ProximityArtifact) bool {
	if q.VisibleAt != nil && a.IsExpired(*q.VisibleAt) {
		return false
	}
	if q.Box != nil && !q.Box.Contains(a.Location) {
		return false
	}
	if q.Type != nil && a.Type != *q.Type {
		return false
	}
	if q.OwnerID != nil && a.OwnerID != *q.OwnerID {
		return false
	}
	if len(q.States) > 0 {
		found := false
		for _, s := range q.States {
			if a.State == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.CreatedSince != nil && a.CreatedAt.Before(*q.CreatedSince) {
		return false
	}
	return true
}

// FlagResult is the outcome of a single flag increment.
type FlagResult struct {
	Artifact ProximityArtifact
	// Escalated is true only for the increment that first crossed the threshold.
	Escalated bool
}
