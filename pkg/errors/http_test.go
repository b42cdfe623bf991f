package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestHTTPError(t *testing.T) {
	base := NewHTTPError(404, "Report not found")

	if got := base.Error(); got != "404: Report not found" {
		t.Errorf("Error() = %q", got)
	}

	detailed := base.WithDetails([]string{"x"})
	if base.Details != nil {
		t.Error("WithDetails must not mutate the receiver")
	}
	if detailed.Code != 404 || detailed.Message != "Report not found" {
		t.Errorf("unexpected copy: %+v", detailed)
	}

	var target *HTTPError
	if !stderrors.As(fmt.Errorf("wrapped: %w", detailed), &target) {
		t.Fatal("errors.As should find HTTPError through wrapping")
	}
}
