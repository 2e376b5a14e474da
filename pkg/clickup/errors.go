package clickup

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrMissingCredential = errors.New("missing ClickUp API token (set CLICKUP_TOKEN or pass --token)")
	ErrIDRequired        = errors.New("id is required")
	ErrAbsolutePath      = errors.New("path must be relative to the API root")
	ErrTrailingData      = errors.New("unexpected data after top-level JSON value")
	ErrConfigRequired    = errors.New("config is required")
	ErrUnknownRecordKind = errors.New("unknown record kind")
)

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Message    string `json:"err,omitempty"`
	Code       string `json:"ECODE,omitempty"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = http.StatusText(e.StatusCode)
	}

	msg := fmt.Sprintf("%d %s", e.StatusCode, status)
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}

	return msg
}

// NewHTTPError builds an HTTPError from a response status and body. ClickUp
// error bodies look like {"err":"Team not authorized","ECODE":"OAUTH_027"};
// anything else is ignored.
func NewHTTPError(statusCode int, status string, body []byte) *HTTPError {
	httpErr := &HTTPError{StatusCode: statusCode, Status: statusText(statusCode, status)}

	var payload struct {
		Err   string `json:"err"`
		ECode string `json:"ECODE"`
	}

	if json.Unmarshal(body, &payload) == nil {
		httpErr.Message = payload.Err
		httpErr.Code = payload.ECode
	}

	return httpErr
}

// statusText strips the numeric prefix net/http puts on Response.Status.
func statusText(code int, status string) string {
	prefix := fmt.Sprintf("%d ", code)
	if len(status) > len(prefix) && status[:len(prefix)] == prefix {
		return status[len(prefix):]
	}

	if status == "" {
		return http.StatusText(code)
	}

	return status
}

// TransportError wraps a network-level failure (DNS, refused connection,
// timeout) for a single request.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a response body is not valid JSON of the
// expected outer kind.
type ParseError struct {
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("parsing response: %v", e.Err)
	}

	return fmt.Sprintf("parsing %s: %v", e.Resource, e.Err)
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a structural mismatch found by Transform.
type ValidationError struct {
	Key      string
	Path     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid value at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
	}

	return fmt.Sprintf("invalid value for key %q at %s: expected %s, got %s", e.Key, e.Path, e.Expected, e.Actual)
}

// IsTransportError reports whether err is an HTTP status or network failure.
func IsTransportError(err error) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return true
	}

	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
