package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery layers build these in mapError; pkg/response renders them.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Message)
}
