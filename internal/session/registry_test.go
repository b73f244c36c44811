package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/checklist"
	pkgLog "travel-planner/pkg/log"
)

type noIDs struct{}

func (noIDs) Next() string { return "x" }

func TestRegistry_OpenGetClose(t *testing.T) {
	r := New(pkgLog.NewNop(), time.Minute, 10)
	store := checklist.NewStore(nil, noIDs{})

	e := r.Open(context.Background(), "Goa", store)
	require.NotEmpty(t, e.ID)
	assert.Equal(t, "Goa", e.Destination)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get(e.ID)
	require.True(t, ok)
	assert.Same(t, store, got.Store)

	assert.True(t, r.Close(e.ID))
	assert.False(t, r.Close(e.ID))

	_, ok = r.Get(e.ID)
	assert.False(t, ok)
}

func TestRegistry_UniqueIDs(t *testing.T) {
	r := New(pkgLog.NewNop(), time.Minute, 100)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		e := r.Open(context.Background(), "", checklist.NewStore(nil, noIDs{}))
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	r := New(pkgLog.NewNop(), time.Minute, 2)
	ctx := context.Background()

	a := r.Open(ctx, "a", checklist.NewStore(nil, noIDs{}))
	b := r.Open(ctx, "b", checklist.NewStore(nil, noIDs{}))

	_, ok := r.Get(a.ID)
	require.True(t, ok)

	c := r.Open(ctx, "c", checklist.NewStore(nil, noIDs{}))

	_, ok = r.Get(b.ID)
	assert.False(t, ok, "b should have been evicted")
	_, ok = r.Get(a.ID)
	assert.True(t, ok)
	_, ok = r.Get(c.ID)
	assert.True(t, ok)
}

func TestRegistry_Expires(t *testing.T) {
	r := New(pkgLog.NewNop(), 50*time.Millisecond, 10)
	e := r.Open(context.Background(), "Goa", checklist.NewStore(nil, noIDs{}))

	time.Sleep(120 * time.Millisecond)

	_, ok := r.Get(e.ID)
	assert.False(t, ok)
}

func TestRegistry_Defaults(t *testing.T) {
	r := New(pkgLog.NewNop(), 0, 0)
	e := r.Open(context.Background(), "", checklist.NewStore(nil, noIDs{}))
	_, ok := r.Get(e.ID)
	assert.True(t, ok)
}
