package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/proximity-backend/internal/telemetry"
)

// Metrics returns middleware that records request count and latency under
// the given route label. The route is passed in rather than read from the
// URL so unknown paths cannot grow label cardinality.
func Metrics(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			telemetry.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
