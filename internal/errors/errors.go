package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound covers malformed ids, missing documents and documents owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when a request token cannot be resolved to a user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidToken is returned when a token signature or payload is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// FieldError is one failing field, qualified by its path inside the document
// (for example "exercises.0.series.1.load").
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Required builds the FieldError reported for a missing required field.
// path is the full path, the field name is its last segment.
func Required(path string) FieldError {
	field := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		field = path[i+1:]
	}
	return FieldError{Path: path, Message: "Path `" + field + "` is required."}
}

// ValidationError aggregates every failing field of one document.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

// NewValidationError returns nil when fields is empty so callers can return it directly.
func NewValidationError(entity string, fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Fields: fields}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Entity)
	b.WriteString(" validation failed: ")
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Path)
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

// ErrorResponse is the body of a 400 response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
// An empty Message means the response carries no body.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// HasBody reports whether the error is rendered as {error: message}.
func (e *HTTPError) HasBody() bool {
	return e.Message != ""
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return NewHTTPError(http.StatusBadRequest, verr.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "")
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, "")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, "")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
