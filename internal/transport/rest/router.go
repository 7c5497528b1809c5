package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/proximity-backend/internal/transport/middleware"
)

// NewOpsRouter mounts the probes and, when enabled, the Prometheus scrape
// endpoint. Every route is wrapped with request ID, logging, recovery and
// per-route metrics.
func NewOpsRouter(health *HealthHandler, metricsEnabled bool, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	route := func(pattern, label string, h http.Handler) {
		mux.Handle(pattern, middleware.Ops(log, label)(h))
	}

	route("GET /live", "/live", http.HandlerFunc(health.Live))
	route("GET /ready", "/ready", http.HandlerFunc(health.Ready))
	route("GET /health", "/health", http.HandlerFunc(health.Health))
	if metricsEnabled {
		route("GET /metrics", "/metrics", promhttp.Handler())
	}

	return mux
}
