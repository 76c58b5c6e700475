package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/iammorganparry/brainstorm/internal/models"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg, Details: details})
}

// writeServiceError maps a service error's kind onto an HTTP status.
// Storage and unexpected failures are logged with their cause.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var e *models.Error
	if !errors.As(err, &e) {
		logger.Error("request failed", "error", err, "path", r.URL.Path, "request_id", GetRequestID(r))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch e.Kind {
	case models.KindValidation:
		writeError(w, http.StatusBadRequest, e.Message, e.Details...)
	case models.KindNotFound:
		writeError(w, http.StatusNotFound, e.Message)
	default:
		logger.Error("request failed", "kind", e.Kind, "error", err, "path", r.URL.Path, "request_id", GetRequestID(r))
		writeError(w, http.StatusInternalServerError, e.Message)
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}
