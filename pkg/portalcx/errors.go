package portalcx

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind tags the three failure variants a call can surface.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy.
	KindUnknown ErrorKind = iota
	// KindDomain means the API answered with a non-success status.
	KindDomain
	// KindTransport means no response was obtained.
	KindTransport
	// KindValidation means the input was rejected before any request was sent.
	KindValidation
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// DomainError is returned when the API responds with a status other than
// 200 or 204. Message holds the errorMessage field of the JSON body, or the
// raw body text when it is not JSON.
type DomainError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("API Error (Code: %d): %s", e.StatusCode, e.Message)
}

// TransportError wraps connection, timeout, DNS and protocol failures that
// happened before a response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport failure: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed or conflicting input detected before a
// request is issued.
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Err.Error()
	}

	return fmt.Sprintf("validation failed for %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying rule violation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired          = errors.New("config is required")
	ErrBaseURLRequired         = errors.New("API base URL is required")
	ErrProjectOrPortalConflict = errors.New("exactly one of projectId or portalId must be set")
	ErrInvalidTemplateID       = errors.New("template id must be a UUID")
	ErrTokenMissing            = errors.New("login response did not contain a token")
	ErrTemplateIDMissing       = errors.New("response did not contain a template id")
	ErrProjectRefMissing       = errors.New("response did not contain projectId and portalId")
	ErrNotAnObject             = errors.New("response body is not a JSON object")
	ErrUnknownEncoding         = errors.New("unknown body encoding")
)

// KindOf classifies err into the error taxonomy.
func KindOf(err error) ErrorKind {
	var (
		domainErr     *DomainError
		transportErr  *TransportError
		validationErr *ValidationError
	)

	switch {
	case errors.As(err, &domainErr):
		return KindDomain
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &validationErr):
		return KindValidation
	default:
		return KindUnknown
	}
}

// StatusCode returns the HTTP status carried by a DomainError, or 0.
func StatusCode(err error) int {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
