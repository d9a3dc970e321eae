// Package deadlock implements deadlock detection by resource-allocation
// graph reduction over allocation, request and available snapshots.
//
// The reduction answers whether the current snapshot is reducible; it does
// not simulate future request sequences.
package deadlock

import (
	"fmt"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

// Result represents the partition produced by a reduction
type Result struct {
	// Finished lists process indexes that can complete, in index order
	Finished []int
	// Deadlocked lists process indexes that cannot complete, in index order
	Deadlocked []int
	// Sequence lists process indexes in the order they were reduced
	Sequence []int
}

// IsDeadlocked returns true if any process is deadlocked
func (r *Result) IsDeadlocked() bool {
	return len(r.Deadlocked) > 0
}

// Contains returns true if index is deadlocked
func (r *Result) Contains(index int) bool {
	for _, i := range r.Deadlocked {
		if i == index {
			return true
		}
	}
	return false
}

// Detect runs the reduction: any unfinished process whose request fits the
// work vector finishes and releases its allocation; scans repeat until a full
// scan makes no progress.
func Detect(m *model.Matrices) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: matrices are nil", types.ErrDimensionMismatch)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	count := m.Processes()
	work := m.Available.Clone()
	finish := make([]bool, count)
	ret := &Result{Finished: []int{}, Deadlocked: []int{}, Sequence: []int{}}
	for progress := true; progress; {
		progress = false
		for i := 0; i < count; i++ {
			if finish[i] || !m.Request[i].LessOrEqual(work) {
				continue
			}
			finish[i] = true
			work.Add(m.Allocation[i])
			ret.Sequence = append(ret.Sequence, i)
			progress = true
		}
	}
	for i := 0; i < count; i++ {
		if finish[i] {
			ret.Finished = append(ret.Finished, i)
		} else {
			ret.Deadlocked = append(ret.Deadlocked, i)
		}
	}
	return ret, nil
}

// FromProcesses builds matrices from the held/requested vectors of the supplied records.
func FromProcesses(processes model.Processes, available model.Vector) (*model.Matrices, error) {
	ret := &model.Matrices{
		Allocation: make(model.Matrix, 0, len(processes)),
		Request:    make(model.Matrix, 0, len(processes)),
		Available:  available.Clone(),
	}
	for _, p := range processes {
		if len(p.ResourcesHeld) != len(available) || len(p.ResourcesRequested) != len(available) {
			return nil, fmt.Errorf("%w: process %v has %d held and %d requested entries, expected %d",
				types.ErrDimensionMismatch, p.Name, len(p.ResourcesHeld), len(p.ResourcesRequested), len(available))
		}
		ret.Allocation = append(ret.Allocation, p.ResourcesHeld.Clone())
		ret.Request = append(ret.Request, p.ResourcesRequested.Clone())
	}
	return ret, nil
}

// Reference returns the illustrative 5x3 snapshot used when matrices are not derived from input.
func Reference() *model.Matrices {
	return &model.Matrices{
		Allocation: model.Matrix{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		Request:    model.Matrix{{0, 0, 0}, {2, 0, 2}, {0, 0, 0}, {1, 0, 0}, {0, 0, 2}},
		Available:  model.Vector{3, 3, 2},
	}
}

// Decorate maps detection results onto the process list by position.
func Decorate(processes model.Processes, result *Result) model.Processes {
	ret := make(model.Processes, 0, len(processes))
	for i, p := range processes {
		status := model.StatusSafe
		if result.Contains(i) {
			status = model.StatusDeadlocked
		}
		ret = append(ret, p.WithStatus(status))
	}
	return ret
}
