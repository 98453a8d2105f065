package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/124-hue/APIkeygenerator/internal/metrics"
)

// domainResponse is the validity signal returned after every input change.
type domainResponse struct {
	Input        string `json:"input"`
	Hostname     string `json:"hostname"`
	Valid        bool   `json:"valid"`
	Generateable bool   `json:"generateable"`
	Error        string `json:"error,omitempty"`
}

// handleSetDomain implements POST /api/domain. An invalid domain is a
// recoverable validation signal, not a request failure: the response is
// 200 with valid=false so the caller can keep editing.
func (h *Handler) handleSetDomain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(r.Context(), w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.Service.SetDomainInput(req.Domain)
	resp := domainResponse{
		Input:        req.Domain,
		Hostname:     h.Service.Hostname().String(),
		Valid:        err == nil,
		Generateable: h.Service.IsGenerateable(),
	}
	if err != nil {
		metrics.DomainValidationFailures.Inc()
		resp.Error = "invalid domain"
		if cid, ok := GetCorrelationID(r.Context()); ok {
			slog.Debug("domain rejected", "cid", cid)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
