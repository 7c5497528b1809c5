package spoof

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// Detect scores one location report and always persists the result, even at
// score zero, so the per-user history stays complete.
func (s *Service) Detect(ctx context.Context, input DetectInput) (*domain.GeoSpoofDetection, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var sc scorecard

	d := domain.GeoSpoofDetection{
		ID:         uuid.New(),
		UserID:     input.UserID,
		IPAddress:  input.IPAddress,
		Reported:   input.Reported,
		IPLocation: input.IPLocation,
		DetectedAt: now,
	}

	if input.IPLocation != nil {
		dist := geo.DistanceKm(input.Reported, *input.IPLocation)
		d.DistanceKm = &dist
		ipDistanceRule(&sc, s.cfg, dist)
	}

	if input.Previous != nil && input.ElapsedSeconds > 0 {
		d.VelocityKmh = geo.DistanceKm(input.Reported, *input.Previous) / (input.ElapsedSeconds / 3600)
		velocityRule(&sc, s.cfg, d.VelocityKmh)
	}

	networkRule(&sc, s.cfg, input.IPProxy, input.IPHosting)

	history, err := s.detections.ListByUser(ctx, input.UserID, now.Add(-s.cfg.FlipWindow), s.cfg.FlipHistory)
	if err != nil {
		return nil, fmt.Errorf("load recent locations: %w", err)
	}
	track := make([]geo.Point, 0, len(history)+1)
	for i := len(history) - 1; i >= 0; i-- {
		track = append(track, history[i].Reported)
	}
	track = append(track, input.Reported)
	if isLongRangeFlip(track, s.cfg.FlipJumpKm) {
		sc.hit(domain.RuleRepeatedLongRangeFlip, s.cfg.FlipWeight)
	}

	recent, err := s.detections.CountSince(ctx, input.UserID, now.Add(-s.cfg.FrequentWindow))
	if err != nil {
		return nil, fmt.Errorf("count recent detections: %w", err)
	}
	if recent > s.cfg.FrequentChanges {
		sc.hit(domain.RuleFrequentLocationChanges, s.cfg.FrequentWeight)
	}

	d.SuspicionScore = sc.clamped()
	d.Flags = sc.flags
	if d.Flags == nil {
		d.Flags = []string{}
	}

	created, err := s.detections.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create detection: %w", err)
	}

	highRisk := created.IsHighRisk(s.cfg.HighRiskThreshold)
	telemetry.SpoofDetectionsTotal.WithLabelValues(riskLabel(highRisk)).Inc()
	telemetry.SpoofSuspicionScore.Observe(float64(created.SuspicionScore))
	for _, rule := range created.Flags {
		telemetry.SpoofRuleHitsTotal.WithLabelValues(rule).Inc()
	}

	level := slog.LevelDebug
	if highRisk {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "location scored",
		slog.String("user_id", created.UserID.String()),
		slog.String("detection_id", created.ID.String()),
		slog.Int("score", created.SuspicionScore),
		slog.Any("flags", created.Flags),
	)

	return &created, nil
}

// ObserveLocation is the entry point for a live location update: it resolves
// the client IP, derives the previous position from the newest stored
// detection and scores the report. IP lookup failures are logged and the
// report is scored without an IP location.
func (s *Service) ObserveLocation(ctx context.Context, userID uuid.UUID, reported geo.Point, ipAddress string) (*domain.GeoSpoofDetection, error) {
	input := DetectInput{
		UserID:    userID,
		Reported:  reported,
		IPAddress: ipAddress,
	}

	if s.locator != nil && ipAddress != "" {
		loc, err := s.locator.Locate(ctx, ipAddress)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "ip geolocation failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		case loc != nil:
			p := loc.Point
			input.IPLocation = &p
			input.IPProxy = loc.Proxy
			input.IPHosting = loc.Hosting
		}
	}

	latest, err := s.detections.ListByUser(ctx, userID, time.Time{}, 1)
	if err != nil {
		return nil, fmt.Errorf("load previous location: %w", err)
	}
	if len(latest) == 1 {
		elapsed := s.clock.Now().Sub(latest[0].DetectedAt)
		if elapsed >= s.cfg.MinObservationGap {
			prev := latest[0].Reported
			input.Previous = &prev
			input.ElapsedSeconds = elapsed.Seconds()
		}
	}

	return s.Detect(ctx, input)
}

func riskLabel(high bool) string {
	if high {
		return "high"
	}
	return "low"
}
