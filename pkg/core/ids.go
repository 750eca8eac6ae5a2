package core

import (
	"sync"
	"time"
)

// IDGenerator hands out note identifiers.
// Implementations must never return the same value twice.
type IDGenerator interface {
	Next() int64
}

// Clock abstracts time.Now so id generation can be tested.
type Clock func() time.Time

// ClockIDs derives ids from the creation time in Unix milliseconds.
// When two notes are created within the same millisecond, or the clock
// steps backwards, the id is bumped past the last one issued.
type ClockIDs struct {
	mu   sync.Mutex
	now  Clock
	last int64
}

// NewClockIDs creates a timestamp-derived generator. A nil clock means time.Now.
func NewClockIDs(now Clock) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

// Next returns max(now in ms, last+1).
func (g *ClockIDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// SequenceIDs is a plain counter. The first id is base+1.
type SequenceIDs struct {
	mu   sync.Mutex
	last int64
}

// NewSequenceIDs creates a counter starting after base.
func NewSequenceIDs(base int64) *SequenceIDs {
	return &SequenceIDs{last: base}
}

// Next returns the next value of the counter.
func (g *SequenceIDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last++
	return g.last
}
