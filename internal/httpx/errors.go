package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/124-hue/APIkeygenerator/internal/app"
	"github.com/124-hue/APIkeygenerator/internal/domain"
)

// writeError writes a JSON error body with given status code.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
	if cid, ok := GetCorrelationID(ctx); ok {
		slog.Debug("wrote error response", "cid", cid, "status", code, "msg", msg)
	}
}

// mapServiceError maps domain/service errors to HTTP responses.
func (h *Handler) mapServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	cid, _ := GetCorrelationID(ctx)
	switch {
	case errors.Is(err, domain.ErrInvalidDomain):
		slog.Warn("service error", "cid", cid, "code", "invalid_domain")
		h.writeError(ctx, w, http.StatusBadRequest, "invalid domain")
	case errors.Is(err, domain.ErrUnknownTier):
		slog.Warn("service error", "cid", cid, "code", "unknown_tier")
		h.writeError(ctx, w, http.StatusBadRequest, "unknown tier")
	case errors.Is(err, app.ErrNotGenerateable):
		slog.Info("service error", "cid", cid, "code", "not_generateable")
		h.writeError(ctx, w, http.StatusConflict, "domain not generateable")
	case errors.Is(err, app.ErrNoSuchEntry):
		slog.Info("service error", "cid", cid, "code", "not_found")
		h.writeError(ctx, w, http.StatusNotFound, "not found")
	default:
		// Internal / unexpected: do not log raw error string to avoid
		// leaking key material.
		slog.Error("unhandled service error", "cid", cid, "code", "unhandled")
		h.writeError(ctx, w, http.StatusInternalServerError, "internal")
	}
}
