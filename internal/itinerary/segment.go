package itinerary

import (
	"regexp"
	"strings"

	"travel-planner/internal/model"
)

// dayHeading matches anywhere in the line, so "Visit the day 2 market" is a heading too.
// Unicode space separators such as NBSP count as the gap between "day" and the number.
var dayHeading = regexp.MustCompile(`(?i)day[\s\p{Zs}]*\d+`)

var decoration = strings.NewReplacer("**", "", "*", "", "#", "")

var highlightMarkers = []string{"important", "caution", "tip"}

// StripDecoration removes markdown emphasis and heading markers from the whole text.
func StripDecoration(text string) string {
	return decoration.Replace(text)
}

// Classify builds a DetailLine, flagging it when it mentions a warning or tip.
func Classify(text string) model.DetailLine {
	lower := strings.ToLower(text)
	highlight := false
	for _, m := range highlightMarkers {
		if strings.Contains(lower, m) {
			highlight = true
			break
		}
	}
	return model.DetailLine{Text: text, IsHighlight: highlight}
}

type segmentState int

const (
	outsideDay segmentState = iota
	insideDay
)

// segmenter is the fold accumulator. Detail lines seen before the first
// heading stay in pending and are handed to the first day.
type segmenter struct {
	state   segmentState
	label   string
	pending []model.DetailLine
	out     []model.DayBucket
}

func (s *segmenter) heading(line string) {
	if s.state == insideDay {
		s.flush()
	}
	s.state = insideDay
	s.label = line
}

func (s *segmenter) detail(line string) {
	s.pending = append(s.pending, Classify(line))
}

// flush emits the open day when it has content. An empty day is dropped.
func (s *segmenter) flush() {
	if s.state != insideDay || len(s.pending) == 0 {
		return
	}
	s.out = append(s.out, model.DayBucket{Day: s.label, Details: s.pending})
	s.pending = nil
}

// Segment splits model output into day buckets in source order.
// It never fails: text without headings yields an empty slice.
func Segment(rawText string) []model.DayBucket {
	s := &segmenter{}
	for _, line := range strings.Split(StripDecoration(rawText), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case dayHeading.MatchString(trimmed):
			s.heading(trimmed)
		case trimmed != "":
			s.detail(trimmed)
		}
	}
	s.flush()

	if s.out == nil {
		return []model.DayBucket{}
	}
	return s.out
}
