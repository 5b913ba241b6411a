// Package shared holds the response envelope and context helpers used
// by every handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response shape of the API: every request
// answers {response, status}, success and failure alike. The payload is
// either the requested entity or a plain message string.
type Envelope struct {
	Response any `json:"response"`
	Status   int `json:"status"`
}

// RespondWithJSON writes the {response, status} envelope with the given
// HTTP status code and payload.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	envelope := Envelope{
		Response: payload,
		Status:   status,
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an error envelope whose payload is the given
// message. It logs the response with the trace ID for correlation;
// 5xx responses are logged at ERROR level, everything else at DEBUG.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, message)
}
