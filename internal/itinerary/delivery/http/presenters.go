package http

import (
	"travel-planner/internal/itinerary"
	"travel-planner/internal/model"
)

// --- Request DTOs ---

type generateReq struct {
	Name          string `json:"name"           binding:"required,max=100"`
	StartingPlace string `json:"starting_place" binding:"required,max=200"`
	Destination   string `json:"destination"    binding:"required,max=200"`
	DurationDays  int    `json:"duration_days"  binding:"required,min=1,max=60"`
	Budget        int    `json:"budget"         binding:"required,min=1"`
}

func (r generateReq) toInput() itinerary.TripRequest {
	return itinerary.TripRequest{
		Name:          r.Name,
		StartingPlace: r.StartingPlace,
		Destination:   r.Destination,
		DurationDays:  r.DurationDays,
		Budget:        r.Budget,
	}
}

// ---

type parseReq struct {
	Text string `json:"text"`
}

// --- Response DTOs ---

type detailResp struct {
	Text        string `json:"text"`
	IsHighlight bool   `json:"is_highlight"`
}

type dayResp struct {
	Day     string       `json:"day"`
	Details []detailResp `json:"details"`
}

func newDaysResp(days []model.DayBucket) []dayResp {
	out := make([]dayResp, len(days))
	for i, d := range days {
		details := make([]detailResp, len(d.Details))
		for j, line := range d.Details {
			details[j] = detailResp{Text: line.Text, IsHighlight: line.IsHighlight}
		}
		out[i] = dayResp{Day: d.Day, Details: details}
	}
	return out
}

type generateResp struct {
	RawText  string    `json:"raw_text"`
	Days     []dayResp `json:"days"`
	Provider string    `json:"provider"`
	Model    string    `json:"model"`
}

func (h *handler) newGenerateResp(out itinerary.GenerateOutput) generateResp {
	return generateResp{
		RawText:  out.RawText,
		Days:     newDaysResp(out.Days),
		Provider: out.Provider,
		Model:    out.Model,
	}
}

type parseResp struct {
	Days []dayResp `json:"days"`
}

func (h *handler) newParseResp(out itinerary.ParseOutput) parseResp {
	return parseResp{Days: newDaysResp(out.Days)}
}
