// Package httpx contains the HTTP delivery layer (net/http handlers) for
// the key generator service. It maps HTTP requests onto the application
// service while enforcing method checks, security headers, request
// correlation, and error translation. Handlers are split across files
// (domaininput.go, generate.go, tier.go, history.go, health.go,
// errors.go).
package httpx

import (
	"context"
	"net/http"

	"github.com/124-hue/APIkeygenerator/internal/domain"
	"github.com/124-hue/APIkeygenerator/internal/metrics"
)

// ServicePort abstracts the subset of app.Service used by the HTTP layer.
// It is satisfied by *app.Service in production and mocked in tests.
type ServicePort interface {
	SetDomainInput(raw string) error
	IsGenerateable() bool
	SetTier(t domain.Tier) error
	Tier() domain.Tier
	Generate(tier domain.Tier) (domain.Token, error)
	Hostname() domain.Hostname
	HistoryEntries() []domain.HistoryEntry
	Reuse(i int) (domain.HistoryEntry, error)
}

// Handler wires HTTP endpoints to the application service.
// It is safe for concurrent use. Zero-value is not valid; construct via New.
type Handler struct {
	Service   ServicePort
	Readiness func(context.Context) error // optional readiness probe
}

// New returns a configured Handler.
// svc: application service port implementation.
// readiness: optional probe function for /readyz (nil => always ready).
func New(svc ServicePort, readiness func(context.Context) error) *Handler {
	return &Handler{Service: svc, Readiness: readiness}
}

// Router constructs and returns an http.Handler with all routes mounted
// and the middleware chain (metrics, correlation IDs, security headers)
// applied.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/domain", h.handleSetDomain)
	mux.HandleFunc("/api/key", h.handleGenerateKey)
	mux.HandleFunc("/api/tier", h.handleSetTier)
	mux.HandleFunc("/api/history", h.handleHistory)
	mux.HandleFunc("/api/history/reuse", h.handleReuse)
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/readyz", h.handleReady)
	mux.Handle("/metrics", metrics.Handler())
	return h.secureHeaders(CorrelationIDMiddleware(metrics.Instrument(mux)))
}

// secureHeaders middleware adds standard security & cache control headers.
func (h *Handler) secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		// Responses carry freshly issued keys; never let them be cached.
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'")
		next.ServeHTTP(w, r)
	})
}
