// Package respond writes the API's JSON envelopes.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes the structured error body used by every failure response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorEnvelope{Error: errorBody{Message: message, Status: status}})
}
