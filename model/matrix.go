package model

import (
	"fmt"

	"github.com/viant/ossim/model/types"
)

// Vector represents per resource-type unit counts
type Vector []int

// Clone returns a copy
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return append(Vector(nil), v...)
}

// LessOrEqual reports whether every component is <= the corresponding component of other
func (v Vector) LessOrEqual(other Vector) bool {
	for i := range v {
		if i >= len(other) || v[i] > other[i] {
			return false
		}
	}
	return true
}

// Add adds other component-wise in place
func (v Vector) Add(other Vector) {
	for i := range v {
		if i < len(other) {
			v[i] += other[i]
		}
	}
}

// NonNegative reports whether all components are >= 0
func (v Vector) NonNegative() bool {
	for _, item := range v {
		if item < 0 {
			return false
		}
	}
	return true
}

// Matrix represents a process by resource-type matrix
type Matrix []Vector

// Clone returns a deep copy
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	ret := make(Matrix, len(m))
	for i, row := range m {
		ret[i] = row.Clone()
	}
	return ret
}

// Matrices represents a deadlock detection snapshot
type Matrices struct {
	Allocation Matrix `json:"allocation" yaml:"allocation"`
	Request    Matrix `json:"request" yaml:"request"`
	Available  Vector `json:"available" yaml:"available,flow"`
}

// Processes returns the process count
func (m *Matrices) Processes() int {
	return len(m.Allocation)
}

// Resources returns the resource-type count
func (m *Matrices) Resources() int {
	return len(m.Available)
}

// Validate checks that all matrices agree on dimensions
func (m *Matrices) Validate() error {
	if len(m.Request) != len(m.Allocation) {
		return fmt.Errorf("%w: allocation has %d rows, request has %d", types.ErrDimensionMismatch, len(m.Allocation), len(m.Request))
	}
	resources := len(m.Available)
	for i := range m.Allocation {
		if len(m.Allocation[i]) != resources {
			return fmt.Errorf("%w: allocation row %d has %d columns, expected %d", types.ErrDimensionMismatch, i, len(m.Allocation[i]), resources)
		}
		if len(m.Request[i]) != resources {
			return fmt.Errorf("%w: request row %d has %d columns, expected %d", types.ErrDimensionMismatch, i, len(m.Request[i]), resources)
		}
	}
	return nil
}

// Clone returns a deep copy
func (m *Matrices) Clone() *Matrices {
	if m == nil {
		return nil
	}
	return &Matrices{Allocation: m.Allocation.Clone(), Request: m.Request.Clone(), Available: m.Available.Clone()}
}
