// Package metrics turns finished runs into aggregate statistics. All
// functions are pure and total: empty or degenerate inputs yield zero values.
package metrics

import (
	"math"

	"github.com/viant/ossim/model"
)

// Scheduling computes scheduling statistics from decorated results
func Scheduling(results model.Processes) *model.SchedulingMetrics {
	ret := &model.SchedulingMetrics{TotalProcesses: len(results)}
	if len(results) == 0 {
		return ret
	}
	totalWaiting, totalTurnaround, totalBurst, makespan := 0, 0, 0, 0
	for _, p := range results {
		totalWaiting += model.Value(p.WaitingTime)
		totalTurnaround += model.Value(p.TurnaroundTime)
		totalBurst += p.BurstTime
		if finish := model.Value(p.FinishTime); finish > makespan {
			makespan = finish
		}
	}
	count := float64(len(results))
	ret.AverageWaitingTime = Round(float64(totalWaiting)/count, 2)
	ret.AverageTurnaroundTime = Round(float64(totalTurnaround)/count, 2)
	ret.TotalExecutionTime = makespan
	if makespan > 0 {
		ret.CPUUtilization = Round(float64(totalBurst)/float64(makespan)*100, 1)
		ret.Throughput = Round(count/float64(makespan), 2)
	}
	return ret
}

// Memory computes allocation statistics
func Memory(memory model.Memory, results model.Processes, capacity int) *model.MemoryMetrics {
	used := memory.Used()
	ret := &model.MemoryMetrics{
		TotalMemory:   capacity,
		UsedMemory:    used,
		FreeMemory:    capacity - used,
		Fragmentation: Fragmentation(memory),
	}
	if capacity > 0 {
		ret.Utilization = Round(float64(used)/float64(capacity)*100, 1)
	}
	for _, p := range results {
		switch p.Status {
		case model.StatusAllocated:
			ret.SuccessfulAllocations++
		case model.StatusFailed:
			ret.FailedAllocations++
		}
	}
	return ret
}

// Fragmentation counts maximal free runs
func Fragmentation(memory model.Memory) int {
	fragments := 0
	inFree := false
	for _, owner := range memory {
		switch {
		case owner == 0 && !inFree:
			fragments++
			inFree = true
		case owner != 0:
			inFree = false
		}
	}
	return fragments
}

// Deadlock computes deadlock statistics
func Deadlock(results model.Processes) *model.DeadlockMetrics {
	ret := &model.DeadlockMetrics{TotalProcesses: len(results)}
	for _, p := range results {
		if p.Status == model.StatusDeadlocked {
			ret.DeadlockedProcesses++
		}
	}
	ret.SafeProcesses = ret.TotalProcesses - ret.DeadlockedProcesses
	return ret
}

// Change returns the percentage change of current relative to previous (1 decimal).
// The second result is false when there is no usable previous value.
func Change(current, previous float64) (float64, bool) {
	if previous == 0 || math.IsNaN(previous) {
		return 0, false
	}
	return Round((current-previous)/previous*100, 1), true
}

// Round rounds value to the given number of decimal digits
func Round(value float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(value*factor) / factor
}
