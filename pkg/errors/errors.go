package errors

import "net/http"

// HTTPError is an error with the HTTP status it should be answered with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common HTTP errors.
var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
