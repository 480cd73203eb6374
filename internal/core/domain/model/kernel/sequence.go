package kernel

import "sync/atomic"

// Sequence hands out strictly increasing integer identifiers.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first NextID is start (minimum 1).
func NewSequence(start int) *Sequence {
	if start < 1 {
		start = 1
	}
	s := &Sequence{}
	s.last.Store(int64(start) - 1)
	return s
}

// NextID allocates the next identifier.
func (s *Sequence) NextID() int {
	return int(s.last.Add(1))
}
