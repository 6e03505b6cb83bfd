package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-loader/internal/core/mdparse"
	"campaign-loader/internal/core/port"
)

const missingFieldsMessage = "Missing required fields: mdContent and accountId"

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// decode reads a JSON body of at most h.maxBodyBytes into v. It writes the
// error response itself and reports whether decoding succeeded.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

// writeError maps use case errors to responses. Unknown errors are logged
// and hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, missingFieldsMessage)
	case mdparse.IsValidationError(err):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrJobNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
