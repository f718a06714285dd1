package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-campaigns/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a CampaignUseCase to execute business logic and a logger
// for structured logging. Requests are decoded into domain types, the
// caller's platform credential is attached to the request context and
// domain errors are mapped onto HTTP status codes. Routes are registered on
// a chi.Router for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// CampaignUseCase implementation and a logger. The returned Handler
// registers the campaign, status, run and orphan endpoints under /api/v1
// on a new chi.Router, together with request-id and panic-recovery
// middleware.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.With(withAccount).Post("/campaigns", h.handleCreateCampaign)
		r.With(withAccount).Post("/resources/{type}/{id}/status", h.handleUpdateStatus)
		r.Get("/runs/{id}", h.handleGetRun)
		r.Get("/tenants/{tenant}/orphans", h.handleListOrphans)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
