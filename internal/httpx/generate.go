package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/124-hue/APIkeygenerator/internal/domain"
	"github.com/124-hue/APIkeygenerator/internal/metrics"
)

// handleGenerateKey implements POST /api/key. The request body may select
// a tier; an empty body or empty tier uses the session's active tier.
func (h *Handler) handleGenerateKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(r.Context(), w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(r.Context(), w, http.StatusBadRequest, "invalid json")
		return
	}
	tier := h.Service.Tier()
	if req.Tier != "" {
		var err error
		if tier, err = domain.ParseTier(req.Tier); err != nil {
			h.mapServiceError(r.Context(), w, err)
			return
		}
	}
	tok, err := h.Service.Generate(tier)
	if err != nil {
		h.mapServiceError(r.Context(), w, err)
		return
	}
	metrics.KeysGenerated.WithLabelValues(tier.String()).Inc()
	if cid, ok := GetCorrelationID(r.Context()); ok {
		// Log the non-secret fingerprint only, never the key itself.
		slog.Info("key generated", "cid", cid, "tier", tier.String(), "fingerprint", tok.Fingerprint)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(struct {
		Token       string `json:"token"`
		Prefix      string `json:"prefix"`
		Fingerprint string `json:"fingerprint"`
		Domain      string `json:"domain"`
		Tier        string `json:"tier"`
		IssuedAt    int64  `json:"issued_at"`
	}{
		Token:       tok.Value,
		Prefix:      tok.Prefix,
		Fingerprint: tok.Fingerprint,
		Domain:      h.Service.Hostname().String(),
		Tier:        tier.String(),
		IssuedAt:    tok.IssuedAtMillis,
	})
}
