package packing

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDSource hands out checklist item identifiers.
type IDSource interface {
	Next() string
}

// ULIDSource generates monotonic ULIDs. IDs minted within the same
// millisecond keep increasing, so a batch never repeats an ID.
type ULIDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULIDSource returns a ULIDSource seeded from the current time.
func NewULIDSource() *ULIDSource {
	return &ULIDSource{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		now:     time.Now,
	}
}

// Next returns a fresh ULID string. Safe for concurrent use.
func (s *ULIDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}
