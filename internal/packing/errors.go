package packing

import "errors"

// Domain-specific errors for the packing package.
var (
	ErrSessionNotFound   = errors.New("packing session not found")
	ErrServiceOverloaded = errors.New("generation service overloaded")
	ErrGenerationFailed  = errors.New("packing list generation failed")
	ErrEmptyResponse     = errors.New("model returned empty packing list")
)
