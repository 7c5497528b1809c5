package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must not exceed max_conns")
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0")
	}

	if err := c.Artifact.validate(); err != nil {
		return fmt.Errorf("artifact: %w", err)
	}

	if err := c.Throttle.validate(); err != nil {
		return fmt.Errorf("throttle: %w", err)
	}

	if err := c.Spoof.validate(); err != nil {
		return fmt.Errorf("spoof: %w", err)
	}

	if c.Retention.ExpiredArtifacts < 0 || c.Retention.ExpiredThrottles < 0 {
		return fmt.Errorf("retention: durations must be >= 0")
	}

	if c.IPGeo.Enabled() && c.IPGeo.BaseURL == "" {
		return fmt.Errorf("ipgeo: base_url is required when enabled")
	}

	return nil
}

func (a *ArtifactConfig) validate() error {
	for _, t := range domain.AllArtifactTypes() {
		if a.TTL(t) <= 0 {
			return fmt.Errorf("%s ttl must be > 0 (got %v)", t, a.TTL(t))
		}
		if a.DailyCap(t) < 0 {
			return fmt.Errorf("%s daily cap must be >= 0 (got %d)", t, a.DailyCap(t))
		}
	}
	if a.MinRadiusM <= 0 || a.MinRadiusM > a.MaxRadiusM {
		return fmt.Errorf("radius band [%d, %d] is invalid", a.MinRadiusM, a.MaxRadiusM)
	}
	if a.DefaultRadiusM < a.MinRadiusM || a.DefaultRadiusM > a.MaxRadiusM {
		return fmt.Errorf("default_radius_m %d outside [%d, %d]", a.DefaultRadiusM, a.MinRadiusM, a.MaxRadiusM)
	}
	if a.FuzzMinOffsetM < 0 || a.FuzzMinOffsetM > a.FuzzMaxOffsetM {
		return fmt.Errorf("fuzz band [%v, %v] is invalid", a.FuzzMinOffsetM, a.FuzzMaxOffsetM)
	}
	if a.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", a.MaxContentLength)
	}
	if a.FlagThreshold <= 0 {
		return fmt.Errorf("flag_threshold must be > 0 (got %d)", a.FlagThreshold)
	}
	if a.QueryLimit <= 0 || a.FeedLimit <= 0 {
		return fmt.Errorf("query_limit and feed_limit must be > 0")
	}
	return nil
}

func (t *ThrottleConfig) validate() error {
	for name, sev := range map[string]int{
		"default_severity": t.DefaultSeverity,
		"ban_severity":     t.BanSeverity,
		"spoof_severity":   t.SpoofSeverity,
	} {
		if sev < domain.MinThrottleSeverity || sev > domain.MaxThrottleSeverity {
			return fmt.Errorf("%s must be in [1, 5] (got %d)", name, sev)
		}
	}
	if t.DefaultDuration <= 0 || t.SpoofDuration <= 0 {
		return fmt.Errorf("durations must be > 0")
	}

	schedule, err := ParseAutoSchedule(t.AutoScheduleRaw)
	if err != nil {
		return fmt.Errorf("auto_schedule: %w", err)
	}
	t.AutoSchedule = schedule

	return nil
}

func (s *SpoofConfig) validate() error {
	if !(s.IPModerateKm <= s.IPHighKm && s.IPHighKm <= s.IPMismatchKm) {
		return fmt.Errorf("ip distance tiers must be ascending (%v <= %v <= %v)",
			s.IPModerateKm, s.IPHighKm, s.IPMismatchKm)
	}
	if s.HighSpeedKmh > s.ImpossibleSpeedKmh {
		return fmt.Errorf("high_speed_kmh %v exceeds impossible_speed_kmh %v", s.HighSpeedKmh, s.ImpossibleSpeedKmh)
	}
	if s.HighRiskThreshold < domain.MinSuspicionScore || s.HighRiskThreshold > domain.MaxSuspicionScore {
		return fmt.Errorf("high_risk_threshold must be in [0, 100] (got %d)", s.HighRiskThreshold)
	}
	if s.FlipWindow <= 0 || s.FrequentWindow <= 0 {
		return fmt.Errorf("windows must be > 0")
	}
	if s.ProxyWeight < 0 || s.DatacenterWeight < 0 {
		return fmt.Errorf("proxy_weight and datacenter_weight must be >= 0")
	}
	if s.MinObservationGap < 0 {
		return fmt.Errorf("min_observation_gap must be >= 0 (got %v)", s.MinObservationGap)
	}
	return nil
}

// ParseAutoSchedule parses a comma-separated list of "flags:severity:duration"
// tiers (e.g. "3:2:24h,5:3:72h") sorted by ascending flag count. An empty
// string disables auto-throttling.
func ParseAutoSchedule(raw string) ([]AutoThrottleTier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	tiers := make([]AutoThrottleTier, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fields := strings.Split(p, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid tier %q: want flags:severity:duration", p)
		}
		flags, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || flags <= 0 {
			return nil, fmt.Errorf("invalid flag count in %q", p)
		}
		sev, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil || sev < domain.MinThrottleSeverity || sev > domain.MaxThrottleSeverity {
			return nil, fmt.Errorf("invalid severity in %q", p)
		}
		d, err := time.ParseDuration(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid duration in %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("duration must be > 0 in %q", p)
		}
		tiers = append(tiers, AutoThrottleTier{MinFlagged: flags, Severity: sev, Duration: d})
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinFlagged < tiers[j].MinFlagged })

	return tiers, nil
}
