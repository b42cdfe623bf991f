package reportsrv

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("reportsrv: report not found")

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reportsrv: unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("reportsrv: %d: %s", e.StatusCode, e.Message)
}
