package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/openbounty/bounty-api/internal/domain"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "internal server error"

// JSONError sends a JSON error response with a single "error" field.
func JSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// JSONValidationError sends a JSON error response with "error" and optional "fields" for field-level details.
// status is typically http.StatusBadRequest (400).
func JSONValidationError(w http.ResponseWriter, message string, fields map[string]string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	out := map[string]interface{}{"error": message}
	if len(fields) > 0 {
		out["fields"] = fields
	}
	json.NewEncoder(w).Encode(out)
}

// JSONDomainError maps the error taxonomy onto HTTP statuses. Infra errors
// and anything outside the taxonomy are logged and hidden behind a 500.
func JSONDomainError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		slog.Error("unclassified error", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	switch derr.Kind {
	case domain.KindInvalidData:
		JSONError(w, derr.Message, http.StatusBadRequest)
	case domain.KindNotFound:
		JSONError(w, derr.Message, http.StatusNotFound)
	case domain.KindConflict:
		JSONError(w, derr.Message, http.StatusConflict)
	case domain.KindUnauthorized:
		JSONError(w, derr.Message, http.StatusUnauthorized)
	default:
		slog.Error("infra error", "error", derr)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
	}
}
