package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/metrics"
)

// MetricsMiddleware records HTTP metrics and logs each request once it completes.
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// chi only knows the matched pattern after routing
			inFlight := NormalizeEndpoint(r.URL.Path)
			metricsReg.HTTPRequestsInFlight.WithLabelValues(inFlight).Inc()
			defer metricsReg.HTTPRequestsInFlight.WithLabelValues(inFlight).Dec()

			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			routePattern := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				routePattern = rctx.RoutePattern()
			}

			metricsReg.HTTPRequestsTotal.WithLabelValues(
				routePattern,
				r.Method,
				strconv.Itoa(wrapped.statusCode),
			).Inc()
			metricsReg.HTTPRequestDuration.WithLabelValues(routePattern, r.Method).Observe(duration.Seconds())

			var requestID, userID string
			if meta := getRequestMeta(r.Context()); meta != nil {
				requestID, userID = meta.ID, meta.UserID
			}

			logging.WithRequest(requestID, userID, routePattern).Infow("HTTP request completed",
				"method", r.Method,
				"status_code", wrapped.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = http.StatusOK
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}

// NormalizeEndpoint replaces numeric and UUID path segments with {id} to keep
// label cardinality bounded, e.g. /api/v1/vehicles/12 -> /api/v1/vehicles/{id}.
func NormalizeEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if isIDLike(part) {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

func isIDLike(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return strings.Contains(s, "-") && len(s) == 36
		}
	}
	return true
}
