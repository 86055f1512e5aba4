package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/johnwards/hrdash/internal/domain"
	"github.com/johnwards/hrdash/internal/query"
	"github.com/johnwards/hrdash/internal/store"
)

// Error categories.
const (
	CategoryValidationError = "VALIDATION_ERROR"
	CategoryInvalidQuery    = "INVALID_QUERY"
	CategoryObjectNotFound  = "OBJECT_NOT_FOUND"
	CategoryInternalError   = "INTERNAL_ERROR"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Status        string        `json:"status"`
	Message       string        `json:"message"`
	CorrelationID string        `json:"correlationId"`
	Category      string        `json:"category"`
	Errors        []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single error within an Error. In names the
// offending field or query parameter.
type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	In      string `json:"in,omitempty"`
}

// Error implements the error interface so clients can return the envelope
// directly.
func (e *Error) Error() string {
	return e.Category + ": " + e.Message
}

// NewNotFoundError creates a 404 error with the OBJECT_NOT_FOUND category.
func NewNotFoundError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryObjectNotFound,
	}
}

// NewValidationError creates a 400 error with the VALIDATION_ERROR category.
func NewValidationError(message, correlationID string, details []ErrorDetail) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryValidationError,
		Errors:        details,
	}
}

// NewInvalidQueryError creates a 400 error with the INVALID_QUERY category.
func NewInvalidQueryError(err *query.InvalidQueryError, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       err.Error(),
		CorrelationID: correlationID,
		Category:      CategoryInvalidQuery,
		Errors: []ErrorDetail{{
			Message: err.Message,
			Code:    "INVALID_PARAMETER",
			In:      err.Param,
		}},
	}
}

// NewInternalError creates a 500 error with the INTERNAL_ERROR category.
func NewInternalError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryInternalError,
	}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// WriteStoreError maps an error from the store or query layers onto the
// matching status code and envelope. Unrecognised errors are logged and
// reported as 500 without their text.
func WriteStoreError(w http.ResponseWriter, r *http.Request, err error) {
	corrID := CorrelationID(r.Context())

	var iqe *query.InvalidQueryError
	var ie *domain.InputError
	switch {
	case errors.As(err, &iqe):
		WriteError(w, http.StatusBadRequest, NewInvalidQueryError(iqe, corrID))
	case errors.As(err, &ie):
		details := make([]ErrorDetail, 0, len(ie.Fields))
		for _, f := range ie.Fields {
			details = append(details, ErrorDetail{Message: f.Message, Code: "INVALID_FIELD", In: f.Field})
		}
		WriteError(w, http.StatusBadRequest, NewValidationError(ie.Error(), corrID, details))
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, NewNotFoundError("resource not found", corrID))
	default:
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"correlation_id", corrID,
			"error", err,
		)
		WriteError(w, http.StatusInternalServerError, NewInternalError("Internal Server Error", corrID))
	}
}
