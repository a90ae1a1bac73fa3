package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest is returned before any provider is called.
	ErrInvalidRequest = errors.New("invalid request: at least one message is required")

	// ErrProviderTimeout marks an attempt cut short by the context deadline.
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError is the last failure of one provider after its retries.
// GenerateContent wraps it in ErrAllProvidersFailed, so errors.As finds it.
type ProviderError struct {
	Provider string
	Model    string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (%s) after %d attempt(s): %v", e.Provider, e.Model, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
