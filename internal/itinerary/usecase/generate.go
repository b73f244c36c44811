package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-planner/internal/itinerary"
	"travel-planner/pkg/llmprovider"
)

// Generate validates the trip, asks the model for a plan and segments the result.
func (uc *implUseCase) Generate(ctx context.Context, req itinerary.TripRequest) (itinerary.GenerateOutput, error) {
	if err := validateTrip(req); err != nil {
		return itinerary.GenerateOutput{}, err
	}

	llmReq := llmprovider.UserPrompt(buildItineraryPrompt(req))
	llmReq.Temperature = itineraryTemperature

	resp, err := uc.llm.GenerateContent(ctx, llmReq)
	if err != nil {
		uc.l.Errorf(ctx, "Generate: llm.GenerateContent: %v", err)
		if llmprovider.IsOverloaded(err) {
			return itinerary.GenerateOutput{}, fmt.Errorf("%w: %v", itinerary.ErrServiceOverloaded, err)
		}
		return itinerary.GenerateOutput{}, fmt.Errorf("%w: %v", itinerary.ErrGenerationFailed, err)
	}

	raw := strings.TrimSpace(resp.Text)
	if raw == "" {
		uc.l.Warnf(ctx, "Generate: empty response from %s", resp.ProviderName)
		return itinerary.GenerateOutput{}, itinerary.ErrEmptyResponse
	}

	days := itinerary.Segment(raw)
	uc.l.Infof(ctx, "Generate: destination=%q days=%d provider=%s",
		req.Destination, len(days), resp.ProviderName)

	return itinerary.GenerateOutput{
		RawText:  raw,
		Days:     days,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}, nil
}

// Parse segments text without calling the model.
func (uc *implUseCase) Parse(ctx context.Context, rawText string) (itinerary.ParseOutput, error) {
	days := itinerary.Segment(rawText)
	uc.l.Debugf(ctx, "Parse: days=%d", len(days))
	return itinerary.ParseOutput{Days: days}, nil
}

func validateTrip(req itinerary.TripRequest) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.StartingPlace) == "" {
		missing = append(missing, "starting_place")
	}
	if strings.TrimSpace(req.Destination) == "" {
		missing = append(missing, "destination")
	}
	if req.DurationDays <= 0 {
		missing = append(missing, "duration_days")
	}
	if req.Budget <= 0 {
		missing = append(missing, "budget")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", itinerary.ErrInvalidTrip, strings.Join(missing, ", "))
	}
	return nil
}
