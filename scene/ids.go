package scene

import (
	"strconv"
	"sync/atomic"
)

// ID identifies an area, a layer or a shape. All three kinds of entity draw
// from the same numbering space, so an ID is unique across them.
// The zero ID is never issued and means "none".
type ID uint64

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Sequence is a monotonically increasing id counter.
// The zero value is ready to use and issues 1 first.
// Sequence is safe for concurrent use.
type Sequence struct {
	last atomic.Uint64
}

// Next returns a new id, strictly greater than every id issued before it.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}

// Seed sets the counter so that the next issued id is v+1.
// Use it to resume numbering from a persisted value.
func (s *Sequence) Seed(v uint64) {
	s.last.Store(v)
}

// Advance moves the counter up to v if it is behind, and never moves it
// back. Ids issued concurrently are not reissued.
func (s *Sequence) Advance(v uint64) {
	for {
		cur := s.last.Load()
		if v <= cur || s.last.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Last returns the most recently issued id, or the seed if none was issued.
// This is the value to persist.
func (s *Sequence) Last() uint64 {
	return s.last.Load()
}

// ids is the process-wide identifier authority.
var ids Sequence

// NextID issues a new id from the process-wide sequence.
func NextID() ID {
	return ids.Next()
}

// SeedIDs resumes the process-wide sequence from a persisted value.
func SeedIDs(v uint64) {
	ids.Seed(v)
}

// AdvanceIDs moves the process-wide sequence forward to v if it is behind.
func AdvanceIDs(v uint64) {
	ids.Advance(v)
}

// LastID returns the last id issued by the process-wide sequence.
func LastID() uint64 {
	return ids.Last()
}
