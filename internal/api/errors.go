package api

import (
	"errors"
	"net/http"

	"github.com/yamato-dev/kotoba-api/internal/api/shared"
	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// Error taxonomy codes exposed in the error envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// ErrorCodeForStatus maps an HTTP status to the taxonomy code carried in
// the error envelope.
func ErrorCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidationError
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternalError
	}
}

// SafeMessage returns a sanitized, user-friendly error message based on
// the error type. Validation errors pass their field list through;
// everything else maps to a fixed phrase so that raw storage errors
// never reach the client.
func SafeMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var violations domain.FieldViolations
	if errors.As(err, &violations) {
		return violations.Error()
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrVocabularyNotFound):
		return "Vocabulary entry not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrUserReferenceMissing):
		return "user_id: referenced user does not exist"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrUnavailable):
		return "Service temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// RespondError maps err onto the taxonomy and writes the standard error
// envelope. All handlers funnel their store and domain errors through
// here so the mapping lives in exactly one place.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, ErrorCodeForStatus(status), SafeMessage(err), err)
}
