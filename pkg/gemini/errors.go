package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRequest = errors.New("gemini: request has no messages")
	ErrNoCandidates = errors.New("gemini: response has no candidates")
	ErrBlocked      = errors.New("gemini: prompt blocked")
	// ErrTruncated means generation stopped at the token limit, so structured output is incomplete.
	ErrTruncated = errors.New("gemini: output truncated")
)

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}
