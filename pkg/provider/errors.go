package provider

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means the provider has no record of the requested id.
	ErrNotFound = errors.New("upstream resource not found")
	// ErrUnavailable covers transport failures and 5xx responses.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrAuthFailed means the provider rejected our credentials.
	ErrAuthFailed = errors.New("upstream authentication failed")
	// ErrRateLimited means the provider returned 429 after retries.
	ErrRateLimited = errors.New("upstream rate limited")
)

// FromStatusCode maps an upstream HTTP status to the error taxonomy.
// Statuses below 400 map to nil.
func FromStatusCode(code int) error {
	switch {
	case code < http.StatusBadRequest:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrNotFound, code)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrAuthFailed, code)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, code)
	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	}
}
