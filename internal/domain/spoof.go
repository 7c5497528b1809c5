package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

const (
	MinSuspicionScore = 0
	MaxSuspicionScore = 100
)

// Rule names recorded in GeoSpoofDetection.Flags.
const (
	RuleIPDistanceMismatch      = "ip_distance_mismatch"
	RuleIPDistanceHigh          = "ip_distance_high"
	RuleIPDistanceModerate      = "ip_distance_moderate"
	RuleImpossibleTravelSpeed   = "impossible_travel_speed"
	RuleHighTravelSpeed         = "high_travel_speed"
	RuleRepeatedLongRangeFlip   = "repeated_long_range_flip"
	RuleFrequentLocationChanges = "frequent_location_changes"
	RuleVPNOrProxy              = "vpn_or_proxy"
	RuleDatacenterIP            = "datacenter_ip"
)

// GeoSpoofDetection records one plausibility check of a reported location.
type GeoSpoofDetection struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	IPAddress        string
	Reported         geo.Point
	IPLocation       *geo.Point
	DistanceKm       *float64
	VelocityKmh      float64
	SuspicionScore   int
	Flags            []string
	IsConfirmedSpoof bool
	Dismissed        bool
	DismissedAt      *time.Time
	DetectedAt       time.Time
}

// HasFlag reports whether rule was triggered.
func (d *GeoSpoofDetection) HasFlag(rule string) bool {
	for _, f := range d.Flags {
		if f == rule {
			return true
		}
	}
	return false
}

// IsHighRisk reports whether the detection belongs in the review queue.
func (d *GeoSpoofDetection) IsHighRisk(threshold int) bool {
	return !d.Dismissed && d.SuspicionScore >= threshold
}

// SpoofStats summarises a user's detection history.
type SpoofStats struct {
	TotalDetections    int
	HighRiskDetections int
	ConfirmedSpoofs    int
	IsHighRiskUser     bool
}

// SpoofCounts is the aggregate the repository computes for SpoofStats.
type SpoofCounts struct {
	Total     int
	HighRisk  int
	Confirmed int
}
