package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-planner/internal/checklist"
	pkgLog "travel-planner/pkg/log"
)

// Entry is one live packing session.
type Entry struct {
	ID          string
	Destination string
	Store       *checklist.Store
	CreatedAt   time.Time
}

// Registry keeps packing sessions in memory. Idle sessions expire after the
// TTL and the least recently used one is evicted once capacity is reached.
type Registry struct {
	cache *expirable.LRU[string, *Entry]
	l     pkgLog.Logger
}

// New creates a Registry. Non-positive arguments fall back to the defaults.
func New(l pkgLog.Logger, ttl time.Duration, maxSessions int) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	r := &Registry{l: l}
	r.cache = expirable.NewLRU[string, *Entry](maxSessions, r.onEvict, ttl)
	return r
}

func (r *Registry) onEvict(id string, _ *Entry) {
	r.l.Debugf(context.Background(), LogMsgSessionEvicted, id)
}

// Open registers store under a fresh id.
func (r *Registry) Open(ctx context.Context, destination string, store *checklist.Store) *Entry {
	e := &Entry{
		ID:          uuid.NewString(),
		Destination: destination,
		Store:       store,
		CreatedAt:   time.Now(),
	}
	r.cache.Add(e.ID, e)
	r.l.Infof(ctx, LogMsgSessionOpened, e.ID, destination)
	return e
}

// Get returns the session and restarts its idle timer.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	r.cache.Add(id, e)
	return e, true
}

// Close drops the session. It reports whether the session existed.
func (r *Registry) Close(id string) bool {
	return r.cache.Remove(id)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	return r.cache.Len()
}
