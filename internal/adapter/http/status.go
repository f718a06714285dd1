package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"mesa-campaigns/internal/core/domain"
)

type statusRequest struct {
	TenantID string `json:"tenant_id"`
	Status   string `json:"status"`
}

// handleUpdateStatus changes the status of /resources/{type}/{id} and
// returns what the platform actually applied.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body statusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Validation("decode", "invalid JSON: %v", err))
		return
	}
	ref := domain.ResourceRef{
		Type: domain.ResourceType(chi.URLParam(r, "type")),
		ID:   chi.URLParam(r, "id"),
	}
	status := domain.ResourceStatus(strings.ToUpper(strings.TrimSpace(body.Status)))

	res, err := h.svc.UpdateResourceStatus(r.Context(), body.TenantID, ref, status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
