package gemini

import "time"

const (
	// DefaultModel is the model the trip planner was tuned against
	DefaultModel = "gemini-2.5-pro"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout. Full itineraries take a while.
	DefaultTimeout = 90 * time.Second
)
