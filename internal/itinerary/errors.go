package itinerary

import "errors"

// Domain-specific errors for the itinerary package.
var (
	ErrInvalidTrip       = errors.New("invalid trip request")
	ErrServiceOverloaded = errors.New("generation service overloaded")
	ErrGenerationFailed  = errors.New("itinerary generation failed")
	ErrEmptyResponse     = errors.New("model returned empty itinerary")
)
