package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies; no endpoint accepts anything large.
const maxBodyBytes = 64 << 10

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code, a human message, and for
// validation failures the offending fields.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Fields: fields}})
}

// handleError maps domain errors to HTTP responses. Unknown errors become an
// opaque 500; the detail goes to the log together with the request id.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		var fields map[string]string
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			fields = make(map[string]string, len(vErr.Errors))
			for _, fe := range vErr.Errors {
				fields[fe.Field] = fe.Message
			}
		}
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), fields)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied", nil)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", err.Error(), nil)
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, domain.ErrPrecondition):
		writeError(w, http.StatusUnprocessableEntity, "PRECONDITION_FAILED", err.Error(), nil)
	default:
		log.Error("unhandled error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", ctxutil.RequestIDFromCtx(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields and
// oversized payloads. Failures surface as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}
