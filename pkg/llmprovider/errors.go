package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrInvalidRequest is returned before any provider is called.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmptyResponse means a provider answered without any text. It is retried like any other failure.
	ErrEmptyResponse = errors.New("empty response")
)

// ProviderError records which provider and model produced the last failure in a fallback chain.
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("provider %s (%s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
