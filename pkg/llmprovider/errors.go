package llmprovider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"travel-planner/pkg/gemini"
	"travel-planner/pkg/qwen"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderOverloaded indicates the upstream model answered 503
	ErrProviderOverloaded = errors.New("provider overloaded")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsOverloaded reports whether err means the model is temporarily unavailable.
// Rate limiting counts as overload for the caller.
func IsOverloaded(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrProviderOverloaded) || errors.Is(err, ErrProviderRateLimited) {
		return true
	}

	var gemErr *gemini.APIError
	if errors.As(err, &gemErr) {
		return overloadedStatus(gemErr.StatusCode)
	}
	var qwenErr *qwen.APIError
	if errors.As(err, &qwenErr) {
		return overloadedStatus(qwenErr.StatusCode)
	}

	return strings.Contains(err.Error(), "503")
}

func overloadedStatus(code int) bool {
	return code == http.StatusServiceUnavailable || code == http.StatusTooManyRequests
}
