package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PruneExpired deletes artifacts that expired more than retention ago.
// Expiry itself is lazy; this only reclaims storage. Artifacts with audit
// records are kept.
func (s *Service) PruneExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if retention < 0 {
		return 0, fmt.Errorf("prune artifacts: negative retention %v", retention)
	}
	cutoff := s.clock.Now().Add(-retention)

	n, err := s.artifacts.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune artifacts: %w", err)
	}

	s.log.InfoContext(ctx, "expired artifacts pruned",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
