package spoof

import (
	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// scorecard accumulates triggered rules.
type scorecard struct {
	flags []string
	score int
}

func (s *scorecard) hit(rule string, weight int) {
	s.flags = append(s.flags, rule)
	s.score += weight
}

func (s *scorecard) clamped() int {
	return max(domain.MinSuspicionScore, min(domain.MaxSuspicionScore, s.score))
}

// ipDistanceRule applies at most one IP distance tier.
func ipDistanceRule(sc *scorecard, cfg config.SpoofConfig, distanceKm float64) {
	switch {
	case distanceKm > cfg.IPMismatchKm:
		sc.hit(domain.RuleIPDistanceMismatch, cfg.IPMismatchWeight)
	case distanceKm > cfg.IPHighKm:
		sc.hit(domain.RuleIPDistanceHigh, cfg.IPHighWeight)
	case distanceKm > cfg.IPModerateKm:
		sc.hit(domain.RuleIPDistanceModerate, cfg.IPModerateWeight)
	}
}

// networkRule scores the kind of address the report came from.
func networkRule(sc *scorecard, cfg config.SpoofConfig, proxy, hosting bool) {
	if proxy {
		sc.hit(domain.RuleVPNOrProxy, cfg.ProxyWeight)
	}
	if hosting {
		sc.hit(domain.RuleDatacenterIP, cfg.DatacenterWeight)
	}
}

func velocityRule(sc *scorecard, cfg config.SpoofConfig, velocityKmh float64) {
	switch {
	case velocityKmh > cfg.ImpossibleSpeedKmh:
		sc.hit(domain.RuleImpossibleTravelSpeed, cfg.ImpossibleSpeedWeight)
	case velocityKmh > cfg.HighSpeedKmh:
		sc.hit(domain.RuleHighTravelSpeed, cfg.HighSpeedWeight)
	}
}

// isLongRangeFlip reports whether the track, oldest first and ending at the
// current report, finishes with two consecutive jumps longer than jumpKm and
// the current point lands back within jumpKm of a place visited before the
// previous report.
func isLongRangeFlip(track []geo.Point, jumpKm float64) bool {
	n := len(track)
	if n < 3 {
		return false
	}

	current, previous, before := track[n-1], track[n-2], track[n-3]
	if geo.DistanceKm(previous, current) <= jumpKm || geo.DistanceKm(before, previous) <= jumpKm {
		return false
	}

	for _, p := range track[:n-2] {
		if geo.DistanceKm(p, current) <= jumpKm {
			return true
		}
	}
	return false
}
