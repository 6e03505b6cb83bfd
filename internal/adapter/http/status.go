package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-loader/internal/core/domain"
)

type statusResponse struct {
	Job *domain.CampaignJob `json:"job"`
}

// handleStatus returns a job with its status derived from its campaigns.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := h.svc.GetJobStatus(r.Context(), jobID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Job: job})
}
