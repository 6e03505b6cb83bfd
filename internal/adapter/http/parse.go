package httpadapter

import (
	"log/slog"
	"net/http"

	"campaign-loader/internal/core/port"
)

// handleParse validates a document and stores a job for it. The job is
// processed asynchronously; clients poll the status endpoint.
func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	var req port.SubmitJobRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.SubmitJob(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "job created",
		slog.String("job_id", resp.JobID),
		slog.Int("campaigns", resp.CampaignCount))
	writeJSON(w, http.StatusOK, resp)
}
