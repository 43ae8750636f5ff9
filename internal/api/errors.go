// internal/api/errors.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks failures where no response was received at all
// (DNS, refused connection, timeout). Matched with errors.Is.
var ErrNetwork = errors.New("network error")

// RequestError is returned for any response with status >= 400. The raw
// body is kept so the presentation layer can extract a server-provided
// message.
type RequestError struct {
	Status int
	Body   []byte

	payload map[string]any
}

// NewRequestError decodes the failure body eagerly so callers can probe
// the payload without re-parsing.
func NewRequestError(status int, body []byte) *RequestError {
	e := &RequestError{Status: status, Body: body}
	// Body is usually a JSON object; anything else leaves payload nil.
	_ = json.Unmarshal(body, &e.payload)
	return e
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
}

// Unauthorized reports whether this failure must force a session purge.
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Payload returns the decoded JSON body, or nil if the body was not a
// JSON object.
func (e *RequestError) Payload() map[string]any {
	return e.payload
}

// IsUnauthorized reports whether err carries a 401/403 from the backend.
func IsUnauthorized(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Unauthorized()
}
