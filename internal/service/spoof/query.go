package spoof

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/domain"
)

// Stats summarises the user's detection history. A user is high-risk as soon
// as one undismissed detection reaches the high-risk threshold.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (domain.SpoofStats, error) {
	c, err := s.detections.Counts(ctx, userID, s.cfg.HighRiskThreshold)
	if err != nil {
		return domain.SpoofStats{}, fmt.Errorf("count detections: %w", err)
	}
	return domain.SpoofStats{
		TotalDetections:    c.Total,
		HighRiskDetections: c.HighRisk,
		ConfirmedSpoofs:    c.Confirmed,
		IsHighRiskUser:     c.HighRisk > 0,
	}, nil
}

// ReviewQueue returns unconfirmed, undismissed high-risk detections, highest
// score first.
func (s *Service) ReviewQueue(ctx context.Context, limit, offset int) ([]domain.GeoSpoofDetection, error) {
	if limit <= 0 {
		limit = defaultQueueLimit
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.detections.ListPending(ctx, s.cfg.HighRiskThreshold, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pending detections: %w", err)
	}
	return list, nil
}

// CountPending returns the size of the review queue.
func (s *Service) CountPending(ctx context.Context) (int, error) {
	n, err := s.detections.CountPending(ctx, s.cfg.HighRiskThreshold)
	if err != nil {
		return 0, fmt.Errorf("count pending detections: %w", err)
	}
	return n, nil
}

// Recent returns the user's newest detections.
func (s *Service) Recent(ctx context.Context, userID uuid.UUID) ([]domain.GeoSpoofDetection, error) {
	list, err := s.detections.ListByUser(ctx, userID, time.Time{}, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list detections: %w", err)
	}
	return list, nil
}
