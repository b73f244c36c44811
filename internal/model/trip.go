package model

// DetailLine is one non-heading line of an itinerary day.
type DetailLine struct {
	Text        string `json:"text"`
	IsHighlight bool   `json:"is_highlight"`
}

// DayBucket groups the detail lines that follow one "Day N" heading.
type DayBucket struct {
	Day     string       `json:"day"`
	Details []DetailLine `json:"details"`
}

// ChecklistItem is one packing list entry.
// Edit state is tracked by the owning store, not on the item.
type ChecklistItem struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Packed     bool   `json:"packed"`
	IsCategory bool   `json:"is_category,omitempty"`
}
