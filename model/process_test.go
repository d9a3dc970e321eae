package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ossim/model/types"
)

func TestProcess_Validate(t *testing.T) {
	withFields := func(mutate func(p *Process)) *Process {
		p := NewProcess(1, "P1")
		p.ArrivalTime, p.BurstTime, p.Priority, p.MemorySize = 0, 5, 2, 10
		p.ResourcesHeld, p.ResourcesRequested = Vector{1, 0}, Vector{0, 1}
		if mutate != nil {
			mutate(p)
		}
		return p
	}

	var testCases = []struct {
		description string
		process     *Process
		operation   Operation
		expectField string
	}{
		{description: "valid scheduling", process: withFields(nil), operation: FCFS},
		{description: "missing name", process: withFields(func(p *Process) { p.Name = "  " }), operation: FCFS, expectField: "processName"},
		{description: "negative arrival", process: withFields(func(p *Process) { p.ArrivalTime = -1 }), operation: SJF, expectField: "arrivalTime"},
		{description: "zero burst", process: withFields(func(p *Process) { p.BurstTime = 0 }), operation: RoundRobin, expectField: "burstTime"},
		{description: "priority out of range", process: withFields(func(p *Process) { p.Priority = 11 }), operation: Priority, expectField: "priority"},
		{description: "priority ignored by fcfs", process: withFields(func(p *Process) { p.Priority = 0 }), operation: FCFS},
		{description: "memory ignores priority", process: withFields(func(p *Process) { p.Priority = 0 }), operation: FirstFit},
		{description: "memory zero burst", process: withFields(func(p *Process) { p.BurstTime = 0 }), operation: FirstFit, expectField: "burstTime"},
		{description: "memory negative arrival", process: withFields(func(p *Process) { p.ArrivalTime = -5 }), operation: WorstFit, expectField: "arrivalTime"},
		{description: "deadlock ignores burst", process: withFields(func(p *Process) { p.BurstTime = 0 }), operation: Detection},
		{description: "zero memory size", process: withFields(func(p *Process) { p.MemorySize = 0 }), operation: BestFit, expectField: "memorySize"},
		{description: "missing held", process: withFields(func(p *Process) { p.ResourcesHeld = nil }), operation: Detection, expectField: "resourcesHeld"},
		{description: "negative request", process: withFields(func(p *Process) { p.ResourcesRequested = Vector{-1, 0} }), operation: Detection, expectField: "resourcesRequested"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := testCase.process.Validate(testCase.operation.Family(), testCase.operation)
			if testCase.expectField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *types.ValidationError
			if assert.True(t, errors.As(err, &vErr)) {
				assert.Equal(t, testCase.expectField, vErr.Field)
			}
		})
	}
}

func TestProcess_Decoration(t *testing.T) {
	p := NewProcess(7, "P7")
	p.ArrivalTime, p.BurstTime = 2, 4
	p.ResourcesHeld = Vector{1, 2}

	scheduled := p.WithSchedule(5, 9)
	assert.Equal(t, StatusCompleted, scheduled.Status)
	assert.Equal(t, 7, Value(scheduled.TurnaroundTime))
	assert.Equal(t, 3, Value(scheduled.WaitingTime))
	assert.Nil(t, p.StartTime)
	assert.Equal(t, StatusReady, p.Status)

	failed := p.WithAllocation(-5)
	assert.Equal(t, -1, Value(failed.AllocatedPosition))
	assert.Equal(t, StatusFailed, failed.Status)

	clone := scheduled.Clone()
	clone.ResourcesHeld[0] = 9
	*clone.StartTime = 0
	assert.Equal(t, Vector{1, 2}, scheduled.ResourcesHeld)
	assert.Equal(t, 5, Value(scheduled.StartTime))

	reset := scheduled.Reset()
	assert.Nil(t, reset.FinishTime)
	assert.Equal(t, StatusReady, reset.Status)
	assert.Equal(t, 0, Value(nil))
}

func TestProcesses(t *testing.T) {
	list := Processes{NewProcess(3, "A"), NewProcess(5, "B")}
	assert.Equal(t, 1, list.Index(5))
	assert.Equal(t, -1, list.Index(9))
	assert.Equal(t, uint64(3), list.ByName("A").ID)
	assert.Nil(t, list.ByName("Z"))
	clone := list.Clone()
	clone[0].Name = "X"
	assert.Equal(t, "A", list[0].Name)
}
