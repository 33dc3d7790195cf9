package llm

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrMissingCredential is returned when a provider is requested without
// the API key it needs.
var ErrMissingCredential = errors.New("missing API key")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidCredential indicates the provider rejected the API key, or
// the key has no access to the requested model (401, 403, 404).
type ErrInvalidCredential struct {
	StatusCode int
	Err        error
}

func (e *ErrInvalidCredential) Error() string {
	return fmt.Sprintf("credential rejected (status %d): %v", e.StatusCode, e.Err)
}

func (e *ErrInvalidCredential) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider returned a response with no
// usable content.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// IsCredentialError reports whether err means the configured key is
// missing, invalid, or cannot reach the model.
func IsCredentialError(err error) bool {
	if errors.Is(err, ErrMissingCredential) {
		return true
	}
	var ic *ErrInvalidCredential
	return errors.As(err, &ic)
}

// errorForStatus classifies an HTTP status returned by a provider SDK.
func errorForStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusNotFound:
		return &ErrInvalidCredential{StatusCode: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}
