package itinerary

import "context"

// UseCase defines the business logic interface for the itinerary domain.
type UseCase interface {
	// Generate asks the model for a day-wise plan and segments the answer.
	Generate(ctx context.Context, req TripRequest) (GenerateOutput, error)

	// Parse segments itinerary text the caller already holds.
	Parse(ctx context.Context, rawText string) (ParseOutput, error)
}
