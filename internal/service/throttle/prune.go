package throttle

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PruneExpired deletes timed throttles that ran out more than retention ago.
// The audit trail keeps their details.
func (s *Service) PruneExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if retention < 0 {
		return 0, fmt.Errorf("prune throttles: negative retention %v", retention)
	}
	cutoff := s.clock.Now().Add(-retention)

	n, err := s.throttles.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune throttles: %w", err)
	}

	s.log.InfoContext(ctx, "expired throttles pruned",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
