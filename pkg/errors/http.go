package errors

import "fmt"

// HTTPError is an error carrying the HTTP status and the message shown to clients.
type HTTPError struct {
	Code    int
	Message string
	Details any
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// WithDetails returns a copy of e carrying details. e is left unchanged.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}
