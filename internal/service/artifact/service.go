package artifact

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/domain"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

// candidateFactor sizes each storage page relative to the result cap so
// that one page usually survives the exact distance filter.
const candidateFactor = 4

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type artifactRepo interface {
	Create(ctx context.Context, a domain.ProximityArtifact) (domain.ProximityArtifact, error)
	IncrementFlag(ctx context.Context, id uuid.UUID, threshold int, now time.Time) (domain.FlagResult, error)
	UpdateState(ctx context.Context, id uuid.UUID, state domain.ArtifactState, now time.Time) (domain.ProximityArtifact, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ProximityArtifact, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.ProximityArtifact, error)
	Find(ctx context.Context, q domain.ArtifactQuery) ([]domain.ProximityArtifact, error)
	Count(ctx context.Context, q domain.ArtifactQuery) (int, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type actionRepo interface {
	Create(ctx context.Context, a domain.ModerationAction) (domain.ModerationAction, error)
}

type severityReader interface {
	Severities(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// escalationHook is notified inside the flag transaction when an artifact
// first crosses the flag threshold.
type escalationHook interface {
	ArtifactFlagged(ctx context.Context, a domain.ProximityArtifact) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the proximity artifact store.
type Service struct {
	log        *slog.Logger
	artifacts  artifactRepo
	actions    actionRepo
	severities severityReader
	escalation escalationHook
	tx         txManager
	fuzzer     *geo.Fuzzer
	cfg        config.ArtifactConfig
	clock      domain.Clock

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new artifact service. escalation may be nil, in which
// case threshold crossings only change the artifact state.
func NewService(
	log *slog.Logger,
	artifacts artifactRepo,
	actions actionRepo,
	severities severityReader,
	escalation escalationHook,
	tx txManager,
	fuzzer *geo.Fuzzer,
	cfg config.ArtifactConfig,
	clock domain.Clock,
) *Service {
	//nolint:gosec // feed sampling, not cryptographic
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		log:        log.With("service", "artifact"),
		artifacts:  artifacts,
		actions:    actions,
		severities: severities,
		escalation: escalation,
		tx:         tx,
		fuzzer:     fuzzer,
		cfg:        cfg,
		clock:      clock,
		rng:        rng,
	}
}

func (s *Service) sample() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

func startOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
