package deadline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every allocation error. Callers should not retry.
	ErrInvalidInput = errors.New("invalid scheduling input")

	ErrInvalidScore   = fmt.Errorf("%w: difficulty score must be finite and non-negative", ErrInvalidInput)
	ErrInvalidHorizon = fmt.Errorf("%w: horizon must start on a date and cover the initial offset", ErrInvalidInput)
	ErrInvalidConfig  = fmt.Errorf("%w: allocation bounds are inconsistent", ErrInvalidInput)
)
