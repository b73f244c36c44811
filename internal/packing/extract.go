package packing

import (
	"regexp"
	"strings"
	"unicode"

	"travel-planner/internal/model"
)

// categoryHeading matches lines such as "CLOTHING:" or "TRAVEL DOCS:", with any Unicode space.
var categoryHeading = regexp.MustCompile(`^[A-Z\s\p{Zs}]+:$`)

var bulletDecoration = strings.NewReplacer("#", "", "*", "", "•", "")

var noiseMarkers = []string{"packing list", "note:", "category:"}

// Extract turns model output into checklist items, one per surviving line,
// in source order. Every item starts unpacked.
func Extract(rawText string, ids IDSource) []model.ChecklistItem {
	items := make([]model.ChecklistItem, 0)
	for _, line := range strings.Split(rawText, "\n") {
		if isNoise(line) {
			continue
		}
		text := cleanBullet(line)
		if text == "" {
			continue
		}
		items = append(items, model.ChecklistItem{
			ID:     ids.Next(),
			Text:   text,
			Packed: false,
		})
	}
	return items
}

func isNoise(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	lower := strings.ToLower(line)
	for _, m := range noiseMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return categoryHeading.MatchString(trimmed)
}

// cleanBullet drops markdown and bullet glyphs anywhere in the line and
// dashes only where they act as a list marker, so "t-shirts" survives.
func cleanBullet(line string) string {
	text := strings.TrimLeftFunc(bulletDecoration.Replace(line), isListMarker)
	return strings.TrimSpace(text)
}

func isListMarker(r rune) bool {
	switch r {
	case '-', '–', '—':
		return true
	}
	return unicode.IsSpace(r)
}
