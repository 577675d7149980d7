package gemini

import (
	"errors"
	"fmt"
)

// ErrKeyNotConfigured is returned before any network call when the API key
// is absent or still the local placeholder.
var ErrKeyNotConfigured = errors.New("GEMINI_API_KEY is not set; configure it in your hosting environment")

// RateLimitError means every attempt came back 429.
type RateLimitError struct {
	Attempts int
	Body     string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded after %d attempts: %s", e.Attempts, e.Body)
}

// CredentialError covers upstream 400/403, which almost always means an
// invalid API key. Never retried.
type CredentialError struct {
	Status int
	Body   string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("API key invalid or request rejected, status %d: %s", e.Status, e.Body)
}

// UpstreamError covers any other non-2xx status. Never retried.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API call failed with status %d", e.Status)
}

// TransportError means every attempt failed below HTTP (timeout, refused
// connection). Wraps the last attempt's error.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
