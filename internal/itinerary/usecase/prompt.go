package usecase

import (
	"fmt"

	"travel-planner/internal/itinerary"
)

const itineraryTemperature = 0.7

func buildItineraryPrompt(req itinerary.TripRequest) string {
	return fmt.Sprintf(`Create a detailed travel itinerary with the following details:
Name: %s
Starting Place: %s
Destination: %s
Duration: %d days
Budget: %d INR

Please provide a day-wise plan. Start each day with a heading of the form "Day N".
For every day include:
- Places to visit with a short description
- Suggested hotels or stays within the budget
- Local transport options between places
- Important tips, cautions and local customs

Keep the plan realistic for the budget and the travel time from %s.`,
		req.Name, req.StartingPlace, req.Destination, req.DurationDays, req.Budget, req.StartingPlace)
}
