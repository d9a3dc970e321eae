package allocation

import "github.com/viant/ossim/model"

// Strategy selects a free run able to hold size units, returning its offset or -1.
type Strategy func(memory model.Memory, size int) int

// FirstFit picks the lowest offset at which size units fit
func FirstFit(memory model.Memory, size int) int {
	for _, run := range memory.FreeRuns() {
		if run.Size >= size {
			return run.Offset
		}
	}
	return -1
}

// BestFit picks the smallest free run that fits, the first such run wins ties
func BestFit(memory model.Memory, size int) int {
	position, best := -1, 0
	for _, run := range memory.FreeRuns() {
		if run.Size >= size && (position == -1 || run.Size < best) {
			position, best = run.Offset, run.Size
		}
	}
	return position
}

// WorstFit picks the largest free run that fits, the first such run wins ties
func WorstFit(memory model.Memory, size int) int {
	position, worst := -1, -1
	for _, run := range memory.FreeRuns() {
		if run.Size >= size && run.Size > worst {
			position, worst = run.Offset, run.Size
		}
	}
	return position
}

// Allocate places processes in the given order, never revisiting earlier placements.
// A process that does not fit is marked failed and the run continues.
func Allocate(processes model.Processes, capacity int, strategy Strategy) (model.Memory, model.Processes) {
	memory := model.NewMemory(capacity)
	results := make(model.Processes, 0, len(processes))
	for i, p := range processes {
		position := -1
		if p.MemorySize > 0 && p.MemorySize <= capacity {
			position = strategy(memory, p.MemorySize)
		}
		if position >= 0 {
			memory.Assign(model.Block{Offset: position, Size: p.MemorySize}, i+1)
		}
		results = append(results, p.WithAllocation(position))
	}
	return memory, results
}
