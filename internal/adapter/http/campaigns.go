package httpadapter

import (
	"encoding/json"
	"net/http"

	"mesa-campaigns/internal/core/domain"
)

// handleCreateCampaign decodes a domain.CampaignRequest and runs the full
// creation sequence. Success and partial success answer 201, a failed run
// answers 422 with the same body so callers see what was left behind.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, domain.Validation("decode", "invalid JSON: %v", err))
		return
	}

	res, err := h.svc.CreateCompleteCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusCreated
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, res)
}
