package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorDetail is the inner object of the standard error envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope:
// {"error":{"code":STRING,"message":STRING}}.
// Internal details (raw errors, query text) are never serialized here.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard error envelope with the given
// status, taxonomy code, and user-facing message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	RespondWithErrorAndLog(w, r, status, code, message, nil)
}

// RespondWithErrorAndLog writes the standard error envelope and logs the
// underlying error for operators. Only the taxonomy code and the
// sanitized message reach the client.
//
// Log level strategy:
//   - 5xx errors are logged at ERROR level
//   - 4xx errors are logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	code string,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("error_code", code),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: userMessage},
	})
}
