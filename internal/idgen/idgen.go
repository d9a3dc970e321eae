package idgen

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// NewFunc returns a new globally unique identifier. Override in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new run identifier.
func New() string { return NewFunc() }

// Sequence issues monotonically increasing identifiers starting at 1.
type Sequence struct {
	last atomic.Uint64
}

// Next returns the next identifier.
func (s *Sequence) Next() uint64 {
	return s.last.Add(1)
}
