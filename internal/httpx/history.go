package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/124-hue/APIkeygenerator/internal/metrics"
)

// historyEntry is the wire form of one recorded generation.
type historyEntry struct {
	Domain string `json:"domain"`
	Token  string `json:"token"`
}

// handleHistory implements GET /api/history, most recently issued first.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(r.Context(), w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	entries := h.Service.HistoryEntries()
	out := make([]historyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntry{Domain: e.Domain, Token: e.Token})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Entries []historyEntry `json:"entries"`
	}{Entries: out})
}

// handleReuse implements POST /api/history/reuse. It copies an entry back
// into the active display; nothing is regenerated or revalidated.
func (h *Handler) handleReuse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(r.Context(), w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, http.StatusBadRequest, "invalid json")
		return
	}
	e, err := h.Service.Reuse(req.Index)
	if err != nil {
		h.mapServiceError(r.Context(), w, err)
		return
	}
	metrics.HistoryReuses.Inc()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(historyEntry{Domain: e.Domain, Token: e.Token})
}
