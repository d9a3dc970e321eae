// Package sample provides the demonstration datasets for every simulator
// section.
package sample

import "github.com/viant/ossim/model"

type record struct {
	name      string
	arrival   int
	burst     int
	priority  int
	memory    int
	held      model.Vector
	requested model.Vector
}

var scheduling = []record{
	{name: "P1", arrival: 0, burst: 6, priority: 2, memory: 25},
	{name: "P2", arrival: 1, burst: 4, priority: 1, memory: 15},
	{name: "P3", arrival: 2, burst: 8, priority: 3, memory: 35},
	{name: "P4", arrival: 3, burst: 3, priority: 2, memory: 20},
	{name: "P5", arrival: 4, burst: 5, priority: 4, memory: 30},
}

var deadlock = []record{
	{name: "P1", held: model.Vector{0, 1, 0}, requested: model.Vector{2, 0, 0}},
	{name: "P2", held: model.Vector{2, 0, 0}, requested: model.Vector{0, 0, 1}},
	{name: "P3", held: model.Vector{3, 0, 2}, requested: model.Vector{0, 0, 0}},
	{name: "P4", held: model.Vector{2, 1, 1}, requested: model.Vector{1, 0, 0}},
	{name: "P5", held: model.Vector{0, 0, 2}, requested: model.Vector{0, 0, 2}},
}

// Available is the available vector matching the deadlock dataset.
var Available = model.Vector{3, 3, 2}

// Processes returns fresh sample records for the operation's section. The
// nextID function assigns record IDs.
func Processes(operation model.Operation, nextID func() uint64) model.Processes {
	records := scheduling
	if operation.Family() == model.FamilyDeadlock {
		records = deadlock
	}
	ret := make(model.Processes, len(records))
	for i, r := range records {
		p := model.NewProcess(nextID(), r.name)
		p.ArrivalTime = r.arrival
		p.BurstTime = r.burst
		p.Priority = r.priority
		p.MemorySize = r.memory
		p.ResourcesHeld = r.held.Clone()
		p.ResourcesRequested = r.requested.Clone()
		ret[i] = p
	}
	return ret
}
