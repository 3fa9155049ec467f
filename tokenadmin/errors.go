package tokenadmin

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-success HTTP response from the service.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
	TypeKey    string // Optional server-provided exception type key.
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if e.TypeKey != "" {
		return fmt.Sprintf("tokenadmin API %d (%s): %s", e.StatusCode, e.TypeKey, msg)
	}
	return fmt.Sprintf("tokenadmin API %d: %s", e.StatusCode, msg)
}

// IsUnauthorized reports whether err is an APIError carrying HTTP 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is an APIError carrying HTTP 403, the
// status returned when the caller is not an organization administrator.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}
