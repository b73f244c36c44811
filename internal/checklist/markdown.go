package checklist

import (
	"regexp"
	"strings"

	"travel-planner/internal/model"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Regex pattern: captures checkbox state and text. Nested items are read flat.
	// Example: "  - [x] Passport" → groups: ["x", "Passport"]
	CheckboxPattern = `(?m)^\s*- \[([ xX])\] (.+)$`
)

var (
	checkboxRe   = regexp.MustCompile(CheckboxPattern)
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
)

// sanitizeContent removes code blocks before checkbox parsing
// so that checkboxes quoted inside code are not picked up.
func sanitizeContent(content string) string {
	sanitized := fencedCodeRe.ReplaceAllString(content, "")
	return inlineCodeRe.ReplaceAllString(sanitized, "")
}

// ParseMarkdown extracts all checkboxes from markdown content.
func ParseMarkdown(content string) []Checkbox {
	sanitized := sanitizeContent(strings.ReplaceAll(content, "\r\n", "\n"))

	matches := checkboxRe.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for _, match := range matches {
		if len(match) != 3 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Checked: strings.ToLower(match[1]) == "x",
			Text:    strings.TrimSpace(match[2]),
		})
	}

	return checkboxes
}

// ImportMarkdown builds a Store from a shared markdown checklist,
// restoring each item's packed state.
func ImportMarkdown(content string, ids IDSource) *Store {
	boxes := ParseMarkdown(content)
	items := make([]model.ChecklistItem, 0, len(boxes))
	for _, cb := range boxes {
		if cb.Text == "" {
			continue
		}
		items = append(items, model.ChecklistItem{
			ID:     ids.Next(),
			Text:   cb.Text,
			Packed: cb.Checked,
		})
	}
	return NewStore(items, ids)
}

// RenderMarkdown writes the list as a markdown checklist, one item per line.
func (s *Store) RenderMarkdown() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	for _, it := range s.items {
		if it.Packed {
			sb.WriteString(CheckboxChecked)
		} else {
			sb.WriteString(CheckboxUnchecked)
		}
		sb.WriteByte(' ')
		sb.WriteString(strings.ReplaceAll(it.Text, "\n", " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
