// Package metrics exposes Prometheus collectors for the key generator
// service and the /metrics scrape handler.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// KeysGenerated counts issued keys by security tier.
	KeysGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apikeygen",
			Subsystem: "core",
			Name:      "keys_generated_total",
			Help:      "Total API keys generated, by security tier.",
		},
		[]string{"tier"},
	)

	// DomainValidationFailures counts inputs rejected by the normalizer.
	DomainValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "apikeygen",
			Subsystem: "core",
			Name:      "domain_validation_failures_total",
			Help:      "Total domain inputs rejected by the normalizer.",
		},
	)

	// HistoryReuses counts entries copied back from the history record.
	HistoryReuses = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "apikeygen",
			Subsystem: "core",
			Name:      "history_reuses_total",
			Help:      "Total history entries reused into the active display.",
		},
	)

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apikeygen",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, path, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "apikeygen",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
)

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// Instrument wraps next, recording request counts and durations. The
// route set is small and static, so the raw path is a safe label.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// statusWriter captures the response status for the request counter.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
