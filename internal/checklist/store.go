package checklist

import (
	"sync"

	"travel-planner/internal/model"
)

// Store holds one packing list and its single edit target.
// Every method is safe for concurrent use. Unknown ids are ignored.
type Store struct {
	mu      sync.RWMutex
	items   []model.ChecklistItem
	editing string // id of the edit target, "" when none
	ids     IDSource
}

// NewStore wraps a copy of items.
func NewStore(items []model.ChecklistItem, ids IDSource) *Store {
	cp := make([]model.ChecklistItem, len(items))
	copy(cp, items)
	return &Store{items: cp, ids: ids}
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Toggle flips the packed flag of the item.
func (s *Store) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items[i].Packed = !s.items[i].Packed
	}
}

// StartEdit makes id the edit target, dropping any unsaved edit of the previous one.
func (s *Store) StartEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) >= 0 {
		s.editing = id
	}
}

// CommitEdit writes text into the edit target and clears it.
func (s *Store) CommitEdit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == "" {
		return
	}
	if i := s.indexOf(s.editing); i >= 0 {
		s.items[i].Text = text
	}
	s.editing = ""
}

// AddItem appends a placeholder item and makes it the edit target.
func (s *Store) AddItem() model.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.ChecklistItem{ID: s.ids.Next(), Text: PlaceholderText}
	s.items = append(s.items, item)
	s.editing = item.ID
	return item
}

// DeleteItem removes the item, keeping the order of the rest.
func (s *Store) DeleteItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if s.editing == id {
		s.editing = ""
	}
}

// Progress reports packed and total counts with a whole percent.
func (s *Store) Progress() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return progressOf(s.items)
}

// Items returns a copy of the current list.
func (s *Store) Items() []model.ChecklistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]model.ChecklistItem, len(s.items))
	copy(cp, s.items)
	return cp
}

// EditTarget returns the id being edited, if any.
func (s *Store) EditTarget() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.editing, s.editing != ""
}

// Snapshot returns items, edit target and progress under one lock.
func (s *Store) Snapshot() ([]model.ChecklistItem, string, Progress) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]model.ChecklistItem, len(s.items))
	copy(cp, s.items)
	return cp, s.editing, progressOf(s.items)
}

func progressOf(items []model.ChecklistItem) Progress {
	total := len(items)
	if total == 0 {
		return Progress{}
	}
	packed := 0
	for _, it := range items {
		if it.Packed {
			packed++
		}
	}
	// round half up in integers
	percent := (packed*200 + total) / (2 * total)
	return Progress{Packed: packed, Total: total, Percent: percent}
}
