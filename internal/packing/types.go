package packing

import (
	"time"

	"travel-planner/internal/checklist"
	"travel-planner/internal/model"
)

// DefaultDestination is used in the prompt when no destination is given.
const DefaultDestination = "your destination"

// CreateSessionInput opens a packing session. Markdown restores a shared
// checklist, RawText is extracted as is, and with neither the list is
// generated for Destination.
type CreateSessionInput struct {
	Destination string
	RawText     string
	Markdown    string
}

// ItemInput addresses one item of a session.
type ItemInput struct {
	SessionID string
	ItemID    string
}

// CommitInput writes text into the session's edit target.
type CommitInput struct {
	SessionID string
	Text      string
}

// SessionOutput is the view of a session after any operation.
type SessionOutput struct {
	SessionID   string
	Destination string
	Items       []model.ChecklistItem
	EditTarget  string
	Progress    checklist.Progress
	CreatedAt   time.Time
}

// ExportOutput is a session rendered as a markdown checklist.
type ExportOutput struct {
	SessionID string
	Markdown  string
}
