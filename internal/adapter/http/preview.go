package httpadapter

import "net/http"

type previewRequest struct {
	MDContent string `json:"mdContent"`
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !h.decode(w, r, &req) {
		return
	}
	preview, err := h.svc.PreviewDocument(r.Context(), req.MDContent)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}
