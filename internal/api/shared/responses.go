package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard error body. Detail carries a human-readable
// message naming what went wrong, e.g. "Task with id 3 not found".
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldViolation describes one request field that failed validation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 body: a machine-readable list of
// violated fields, distinct from the not-found error class.
type ValidationErrorResponse struct {
	Detail []FieldViolation `json:"detail"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and detail message, logging it with the trace ID for correlation.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	slog.Debug("sending error response",
		"status_code", status,
		"detail", detail,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Detail: detail})
}

// RespondWithValidationError writes a 422 response carrying the list of
// field violations.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, violations []FieldViolation) {
	slog.Debug("sending validation error response",
		"violations", len(violations),
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: violations})
}
