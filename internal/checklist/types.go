package checklist

// PlaceholderText is the text of an item created by AddItem.
const PlaceholderText = "New item"

// IDSource hands out item identifiers for AddItem and ImportMarkdown.
type IDSource interface {
	Next() string
}

// Progress summarizes how much of the list is packed.
type Progress struct {
	Packed  int // Packed items
	Total   int // All items
	Percent int // Rounded half up, 0 for an empty list
}

// Checkbox represents a single checkbox in markdown
type Checkbox struct {
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
}
