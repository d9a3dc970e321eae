package model

import (
	"fmt"
	"strings"

	"github.com/viant/ossim/model/types"
)

// Operation represents an algorithm tag
type Operation string

// Family groups operations served by the same engine
type Family string

const (
	FCFS           Operation = "fcfs"
	SJF            Operation = "sjf"
	SRTF           Operation = "srtf"
	PreemptiveSRTF Operation = "srtfp"
	RoundRobin     Operation = "rr"
	Priority       Operation = "priority"
	FirstFit       Operation = "firstfit"
	BestFit        Operation = "bestfit"
	WorstFit       Operation = "worstfit"
	Detection      Operation = "detection"
)

const (
	FamilyScheduling Family = "scheduling"
	FamilyMemory     Family = "memory"
	FamilyDeadlock   Family = "deadlock"
)

var operations = map[Operation]Family{
	FCFS:           FamilyScheduling,
	SJF:            FamilyScheduling,
	SRTF:           FamilyScheduling,
	PreemptiveSRTF: FamilyScheduling,
	RoundRobin:     FamilyScheduling,
	Priority:       FamilyScheduling,
	FirstFit:       FamilyMemory,
	BestFit:        FamilyMemory,
	WorstFit:       FamilyMemory,
	Detection:      FamilyDeadlock,
}

var labels = map[Operation]string{
	FCFS:           "First Come First Serve (FCFS)",
	SJF:            "Shortest Job First (SJF)",
	SRTF:           "Shortest Remaining Time First",
	PreemptiveSRTF: "Shortest Remaining Time First (Preemptive)",
	Priority:       "Priority Scheduling",
	FirstFit:       "First Fit Memory Allocation",
	BestFit:        "Best Fit Memory Allocation",
	WorstFit:       "Worst Fit Memory Allocation",
	Detection:      "Deadlock Detection",
}

// ParseOperation parses an algorithm tag (case-insensitive)
func ParseOperation(tag string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := operations[op]; !ok {
		return "", &types.UnknownOperationError{Operation: tag}
	}
	return op, nil
}

// Family returns the operation family, empty for unknown operations
func (o Operation) Family() Family {
	return operations[o]
}

// Label returns the human-readable algorithm label, quantum is used by round robin only
func (o Operation) Label(quantum int) string {
	if o == RoundRobin {
		return fmt.Sprintf("Round Robin (Quantum = %d)", quantum)
	}
	return labels[o]
}

// Operations returns operations of the supplied family in declaration order, all when family is empty
func Operations(family Family) []Operation {
	all := []Operation{FCFS, SJF, SRTF, PreemptiveSRTF, RoundRobin, Priority, FirstFit, BestFit, WorstFit, Detection}
	if family == "" {
		return all
	}
	var ret []Operation
	for _, op := range all {
		if op.Family() == family {
			ret = append(ret, op)
		}
	}
	return ret
}
