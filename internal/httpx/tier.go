package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/124-hue/APIkeygenerator/internal/domain"
)

// handleSetTier implements PUT /api/tier. Switching tiers never touches
// issued keys; it only changes the default for subsequent generations.
func (h *Handler) handleSetTier(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		h.writeError(r.Context(), w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, http.StatusBadRequest, "invalid json")
		return
	}
	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		h.mapServiceError(r.Context(), w, err)
		return
	}
	if err := h.Service.SetTier(tier); err != nil {
		h.mapServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
