package mrpsdk

import (
	"fmt"
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
)

// Stable error codes returned by the API.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeValidationFailed = "validation_failed"
	ErrorCodeAuthFailed       = "authentication_failed"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeDuplicate        = "duplicate"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeServerError      = "server_error"
)

// FieldError describes one invalid input field in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the error envelope every non-2xx response carries. It is used
// both by the server to render errors and by the SDK to surface them.
type APIError struct {
	// StatusCode is the HTTP status of the response. Not serialized.
	StatusCode int `json:"-"`

	// Code is the stable machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Fields lists the invalid inputs for validation_failed errors.
	Fields []FieldError `json:"fields,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError renders this error to an HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// Predefined errors for the common failure modes. Validation errors are
// built per-request since they carry fields.
var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "malformed request body",
	}
	ErrAuthFailed = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthFailed,
		Message:    "authentication failed",
	}
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "missing or invalid session token",
	}
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "role does not grant access to this section",
	}
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewValidationError builds a validation_failed error from field errors.
func NewValidationError(fields []FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       ErrorCodeValidationFailed,
		Message:    "validation failed",
		Fields:     fields,
	}
}

// NewDuplicateError builds a duplicate error for a named field.
func NewDuplicateError(field string) *APIError {
	return &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeDuplicate,
		Message:    field + " already exists",
	}
}
