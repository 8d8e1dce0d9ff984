package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// errorDetail is the machine-readable error payload inside the envelope.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures are logged
// rather than surfaced — by then the status line is already on the wire.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "response encode failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
}

// writeError writes the {"success":false,"error":{...}} envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, map[string]any{
		"success": false,
		"error":   errorDetail{Code: code, Message: message},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "planner.Generate: validation error: unknown travel style" →
// "unknown travel style".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"planner.Generate: not found: ",
		"planner.Generate: validation error: ",
		"not found: ",
		"validation error: ",
	} {
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
