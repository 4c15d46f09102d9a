// Package shared centralizes JSON response writing so every handler and
// middleware emits the same envelopes.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "healthregistry/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into its HTTP status and the
// `{"error": code}` envelope. Non-domain errors become opaque 500s.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := dErrors.CodeInternal

	var de *dErrors.DomainError
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		code = de.Code
	}

	WriteJSON(w, status, map[string]string{"error": string(code)})
}
