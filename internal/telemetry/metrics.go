// Package telemetry holds the Prometheus metrics of the proximity core.
//
// All metrics are registered against the default registry and exposed by the
// ops server at GET /metrics. Label values are drawn from closed sets (artifact
// types, action types, rule names, lookup results) so cardinality stays flat;
// user and artifact IDs are never used as labels.
//
// Usage:
//
//	telemetry.ArtifactsCreatedTotal.WithLabelValues(string(domain.ArtifactTypeChat)).Inc()
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ops HTTP metrics, labelled by method, route pattern and status code.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_http_requests_total",
			Help: "Total number of ops HTTP requests, by method, route and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "proximity_http_request_duration_seconds",
			Help:    "Histogram of ops HTTP request latencies, by method and route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

// Artifact lifecycle metrics.
//
// ArtifactCreateRejectedTotal uses reason "invalid" or "rate_limited".
// ArtifactEscalationsTotal counts active -> flagged transitions; a rate far
// above the flag rate divided by the threshold means flags are concentrated.
var (
	ArtifactsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_artifacts_created_total",
			Help: "Total number of proximity artifacts created, by type.",
		},
		[]string{"type"},
	)

	ArtifactCreateRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_artifact_create_rejected_total",
			Help: "Total number of rejected artifact creations, by reason.",
		},
		[]string{"reason"},
	)

	ArtifactFlagsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proximity_artifact_flags_total",
			Help: "Total number of user flags recorded on artifacts.",
		},
	)

	ArtifactEscalationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proximity_artifact_escalations_total",
			Help: "Total number of artifacts escalated to the flagged state.",
		},
	)
)

// Moderation and throttle metrics.
var (
	ModerationActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_moderation_actions_total",
			Help: "Total number of moderation actions recorded, by action type.",
		},
		[]string{"action_type"},
	)

	ThrottlesAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_throttles_applied_total",
			Help: "Total number of shadow throttles applied, by reason.",
		},
		[]string{"reason"},
	)
)

// Geo-spoof metrics.
//
// SpoofSuspicionScore buckets follow the rule weights so the distribution
// shows which rule combinations dominate.
var (
	SpoofDetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_spoof_detections_total",
			Help: "Total number of location plausibility checks, by risk (high or low).",
		},
		[]string{"risk"},
	)

	SpoofRuleHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_spoof_rule_hits_total",
			Help: "Total number of times each spoof rule triggered.",
		},
		[]string{"rule"},
	)

	SpoofSuspicionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "proximity_spoof_suspicion_score",
			Help:    "Distribution of suspicion scores.",
			Buckets: []float64{0, 10, 25, 40, 50, 65, 80, 90, 100},
		},
	)
)

// IP geolocation lookup results.
const (
	LookupCacheHit = "cache_hit"
	LookupSuccess  = "success"
	LookupFail     = "fail"
	LookupSkipped  = "skipped"
	LookupError    = "error"
)

var (
	IPGeoLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proximity_ipgeo_lookups_total",
			Help: "Total number of IP geolocation lookups, by result.",
		},
		[]string{"result"},
	)

	IPGeoLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "proximity_ipgeo_lookup_duration_seconds",
			Help:    "Duration of upstream IP geolocation requests.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// DBOpenConnections tracks connections held by the pgx pool. It is sampled
// by StartDBStatsCollector rather than per query.
var DBOpenConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "proximity_db_open_connections",
		Help: "Current number of open database connections in the pool.",
	},
)

// PoolStats reports the number of connections a pool currently holds.
// App adapts *pgxpool.Pool with PoolStatsFunc.
type PoolStats interface {
	TotalConns() int32
}

// PoolStatsFunc adapts a function to PoolStats.
type PoolStatsFunc func() int32

func (f PoolStatsFunc) TotalConns() int32 { return f() }

// StartDBStatsCollector samples pool statistics every interval until ctx is
// done. The goroutine exits with ctx.
func StartDBStatsCollector(ctx context.Context, pool PoolStats, interval time.Duration, log *slog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Debug("db stats collector stopped")
				return
			case <-ticker.C:
				DBOpenConnections.Set(float64(pool.TotalConns()))
			}
		}
	}()
}
