package letta

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a backend-reported failure: any non-2xx response. The status
// and the raw error body are surfaced intact; retry policy belongs to callers.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error: status %d, body: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a backend 404. Callers use this to
// normalize delete-of-absent-resource to success.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
