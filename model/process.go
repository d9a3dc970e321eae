package model

import (
	"fmt"
	"strings"

	"github.com/viant/ossim/model/types"
)

// Status represents a process status
type Status string

const (
	StatusReady      Status = "Ready"
	StatusCompleted  Status = "Completed"
	StatusAllocated  Status = "Allocated"
	StatusFailed     Status = "Failed"
	StatusDeadlocked Status = "Deadlocked"
	StatusSafe       Status = "Safe"
)

const (
	// MinPriority is the most urgent priority value
	MinPriority = 1
	// MaxPriority is the least urgent priority value
	MaxPriority = 10
)

// Process represents a schedulable/allocatable unit.
type Process struct {
	ID   uint64 `json:"id" yaml:"id"`
	Name string `json:"processName" yaml:"processName"`

	ArrivalTime int `json:"arrivalTime,omitempty" yaml:"arrivalTime,omitempty"`
	BurstTime   int `json:"burstTime,omitempty" yaml:"burstTime,omitempty"`
	Priority    int `json:"priority,omitempty" yaml:"priority,omitempty"`
	Quantum     int `json:"quantum,omitempty" yaml:"quantum,omitempty"`

	MemorySize int `json:"memorySize,omitempty" yaml:"memorySize,omitempty"`

	ResourcesHeld      Vector `json:"resourcesHeld,omitempty" yaml:"resourcesHeld,omitempty,flow"`
	ResourcesRequested Vector `json:"resourcesRequested,omitempty" yaml:"resourcesRequested,omitempty,flow"`

	StartTime         *int   `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	FinishTime        *int   `json:"finishTime,omitempty" yaml:"finishTime,omitempty"`
	WaitingTime       *int   `json:"waitingTime,omitempty" yaml:"waitingTime,omitempty"`
	TurnaroundTime    *int   `json:"turnaroundTime,omitempty" yaml:"turnaroundTime,omitempty"`
	AllocatedPosition *int   `json:"allocatedPosition,omitempty" yaml:"allocatedPosition,omitempty"`
	Status            Status `json:"status" yaml:"status"`
}

// NewProcess creates a ready process
func NewProcess(id uint64, name string) *Process {
	return &Process{ID: id, Name: name, Status: StatusReady}
}

// Clone returns a deep copy of the process
func (p *Process) Clone() *Process {
	if p == nil {
		return nil
	}
	ret := *p
	ret.ResourcesHeld = p.ResourcesHeld.Clone()
	ret.ResourcesRequested = p.ResourcesRequested.Clone()
	ret.StartTime = cloneInt(p.StartTime)
	ret.FinishTime = cloneInt(p.FinishTime)
	ret.WaitingTime = cloneInt(p.WaitingTime)
	ret.TurnaroundTime = cloneInt(p.TurnaroundTime)
	ret.AllocatedPosition = cloneInt(p.AllocatedPosition)
	return &ret
}

// Reset returns a copy with all result fields cleared
func (p *Process) Reset() *Process {
	ret := p.Clone()
	ret.StartTime = nil
	ret.FinishTime = nil
	ret.WaitingTime = nil
	ret.TurnaroundTime = nil
	ret.AllocatedPosition = nil
	ret.Status = StatusReady
	return ret
}

// WithSchedule returns a completed copy decorated with timing results.
func (p *Process) WithSchedule(start, finish int) *Process {
	ret := p.Clone()
	turnaround := finish - p.ArrivalTime
	waiting := turnaround - p.BurstTime
	ret.StartTime = &start
	ret.FinishTime = &finish
	ret.WaitingTime = &waiting
	ret.TurnaroundTime = &turnaround
	ret.Status = StatusCompleted
	return ret
}

// WithAllocation returns a copy decorated with allocation position, negative position marks failure
func (p *Process) WithAllocation(position int) *Process {
	ret := p.Clone()
	if position < 0 {
		position = -1
		ret.Status = StatusFailed
	} else {
		ret.Status = StatusAllocated
	}
	ret.AllocatedPosition = &position
	return ret
}

// WithStatus returns a copy with the supplied status
func (p *Process) WithStatus(status Status) *Process {
	ret := p.Clone()
	ret.Status = status
	return ret
}

// Value returns pointed value or zero
func Value(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	ret := *v
	return &ret
}

// Validate checks fields required by the supplied operation family. Arrival
// and burst are checked for every family except deadlock.
func (p *Process) Validate(family Family, operation Operation) error {
	if p == nil {
		return types.NewValidationError("", "process", "is nil")
	}
	if strings.TrimSpace(p.Name) == "" {
		return types.NewValidationError("", "processName", "is required")
	}
	switch family {
	case FamilyDeadlock:
		if len(p.ResourcesHeld) == 0 {
			return types.NewValidationError(p.Name, "resourcesHeld", "is required")
		}
		if len(p.ResourcesRequested) == 0 {
			return types.NewValidationError(p.Name, "resourcesRequested", "is required")
		}
		if !p.ResourcesHeld.NonNegative() {
			return types.NewValidationError(p.Name, "resourcesHeld", "must be non-negative")
		}
		if !p.ResourcesRequested.NonNegative() {
			return types.NewValidationError(p.Name, "resourcesRequested", "must be non-negative")
		}
		return nil
	case FamilyMemory:
		if p.MemorySize <= 0 {
			return types.NewValidationError(p.Name, "memorySize", fmt.Sprintf("must be > 0, got %d", p.MemorySize))
		}
	}
	if p.ArrivalTime < 0 {
		return types.NewValidationError(p.Name, "arrivalTime", fmt.Sprintf("must be >= 0, got %d", p.ArrivalTime))
	}
	if p.BurstTime <= 0 {
		return types.NewValidationError(p.Name, "burstTime", fmt.Sprintf("must be > 0, got %d", p.BurstTime))
	}
	if operation == Priority && (p.Priority < MinPriority || p.Priority > MaxPriority) {
		return types.NewValidationError(p.Name, "priority", fmt.Sprintf("must be in %d..%d, got %d", MinPriority, MaxPriority, p.Priority))
	}
	return nil
}

// Processes represents a process collection
type Processes []*Process

// Clone returns a deep copy
func (p Processes) Clone() Processes {
	if p == nil {
		return nil
	}
	ret := make(Processes, len(p))
	for i, item := range p {
		ret[i] = item.Clone()
	}
	return ret
}

// Index returns process position by ID or -1
func (p Processes) Index(id uint64) int {
	for i, item := range p {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// ByName returns a process by name
func (p Processes) ByName(name string) *Process {
	for _, item := range p {
		if item.Name == name {
			return item
		}
	}
	return nil
}
