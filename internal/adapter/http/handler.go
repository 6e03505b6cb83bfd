package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-loader/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the use case, a logger and
// the request body limit; routes are registered on a chi.Router.
type Handler struct {
	svc          port.CampaignUseCase
	logger       *slog.Logger
	maxBodyBytes int64
	router       chi.Router
}

// NewHandler creates a handler with all routes configured. Request bodies
// larger than maxBodyBytes are rejected.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, maxBodyBytes int64) *Handler {
	h := &Handler{svc: svc, logger: logger, maxBodyBytes: maxBodyBytes}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", h.handleParse)
		r.Post("/preview", h.handlePreview)
		r.Get("/status/{jobID}", h.handleStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
