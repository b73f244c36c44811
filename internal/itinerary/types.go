package itinerary

import "travel-planner/internal/model"

// TripRequest carries the trip details the planner form collects.
type TripRequest struct {
	Name          string
	StartingPlace string
	Destination   string
	DurationDays  int
	Budget        int // INR
}

// GenerateOutput is the model text together with its day buckets.
type GenerateOutput struct {
	RawText  string
	Days     []model.DayBucket
	Provider string
	Model    string
}

// ParseOutput is the result of segmenting caller supplied text.
type ParseOutput struct {
	Days []model.DayBucket
}
