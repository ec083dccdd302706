package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// errorResponse is the JSON error body. Severity guides the client's
// retry affordance for storage failures.
type errorResponse struct {
	Error    string `json:"error"`
	Severity string `json:"severity,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		var se *domain.StorageError
		if errors.As(err, &se) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:    se.Message,
				Severity: se.Severity.String(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
