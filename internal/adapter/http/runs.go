package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-campaigns/internal/core/domain"
)

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, run)
}

// handleListOrphans lists campaigns and ad groups left behind by failed
// runs of a tenant. An empty list is returned as [].
func (h *Handler) handleListOrphans(w http.ResponseWriter, r *http.Request) {
	orphans, err := h.svc.ListOrphans(r.Context(), chi.URLParam(r, "tenant"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if orphans == nil {
		orphans = []domain.Orphan{}
	}
	h.writeJSON(w, http.StatusOK, orphans)
}
