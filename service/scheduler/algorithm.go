package scheduler

import (
	"sort"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

type entry struct {
	process *model.Process
	ordinal int
}

func entries(processes model.Processes) []*entry {
	ret := make([]*entry, len(processes))
	for i, p := range processes {
		ret[i] = &entry{process: p, ordinal: i}
	}
	return ret
}

func slice(e *entry, start, finish, palette int) model.Slice {
	return model.Slice{Process: e.process.Name, Start: start, Finish: finish, Color: model.ColorIndex(e.ordinal, palette)}
}

// FCFS runs processes in arrival order, ties keep insertion order.
func FCFS(processes model.Processes, palette int) (model.Timeline, model.Processes) {
	sorted := entries(processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].process.ArrivalTime < sorted[j].process.ArrivalTime
	})
	schedule := make(model.Timeline, 0, len(sorted))
	results := make(model.Processes, 0, len(sorted))
	clock := 0
	for _, e := range sorted {
		start := max(clock, e.process.ArrivalTime)
		finish := start + e.process.BurstTime
		schedule = append(schedule, slice(e, start, finish, palette))
		results = append(results, e.process.WithSchedule(start, finish))
		clock = finish
	}
	return schedule, results
}

// less reports whether candidate should replace the current selection
type less func(candidate, current *model.Process) bool

func byBurst(candidate, current *model.Process) bool {
	return candidate.BurstTime < current.BurstTime
}

func byPriority(candidate, current *model.Process) bool {
	return candidate.Priority < current.Priority
}

// SJF runs the shortest arrived job to completion, ties go to the earliest remaining process.
func SJF(processes model.Processes, palette int) (model.Timeline, model.Processes) {
	return nonPreemptive(processes, palette, byBurst)
}

// SRTF is served by the non-preemptive shortest job selection; see PreemptiveSRTF for the strict variant.
func SRTF(processes model.Processes, palette int) (model.Timeline, model.Processes) {
	return SJF(processes, palette)
}

// Priority runs the most urgent (lowest value) arrived process to completion.
func Priority(processes model.Processes, palette int) (model.Timeline, model.Processes) {
	return nonPreemptive(processes, palette, byPriority)
}

func nonPreemptive(processes model.Processes, palette int, isBetter less) (model.Timeline, model.Processes) {
	remaining := entries(processes)
	schedule := make(model.Timeline, 0, len(remaining))
	results := make(model.Processes, 0, len(remaining))
	clock := 0
	for len(remaining) > 0 {
		selected := -1
		for i, e := range remaining {
			if e.process.ArrivalTime > clock {
				continue
			}
			if selected == -1 || isBetter(e.process, remaining[selected].process) {
				selected = i
			}
		}
		if selected == -1 {
			clock = earliestArrival(remaining)
			continue
		}
		e := remaining[selected]
		start := clock
		finish := start + e.process.BurstTime
		schedule = append(schedule, slice(e, start, finish, palette))
		results = append(results, e.process.WithSchedule(start, finish))
		clock = finish
		remaining = append(remaining[:selected], remaining[selected+1:]...)
	}
	return schedule, results
}

func earliestArrival(remaining []*entry) int {
	ret := remaining[0].process.ArrivalTime
	for _, e := range remaining[1:] {
		ret = min(ret, e.process.ArrivalTime)
	}
	return ret
}

// PreemptiveSRTF re-evaluates the shortest remaining time every time unit.
// Ties go to the earliest inserted process; consecutive units of the same
// process are merged into one slice.
func PreemptiveSRTF(processes model.Processes, palette int) (model.Timeline, model.Processes) {
	pending := entries(processes)
	remaining := make([]int, len(pending))
	started := make([]int, len(pending))
	finished := make([]bool, len(pending))
	for i, e := range pending {
		remaining[i] = e.process.BurstTime
		started[i] = -1
	}
	var schedule model.Timeline
	finishTimes := make([]int, len(pending))
	var completion []int
	clock, done, running := 0, 0, -1
	for done < len(pending) {
		selected := -1
		for i, e := range pending {
			if finished[i] || e.process.ArrivalTime > clock {
				continue
			}
			if selected == -1 || remaining[i] < remaining[selected] {
				selected = i
			}
		}
		if selected == -1 {
			next := -1
			for i, e := range pending {
				if !finished[i] && (next == -1 || e.process.ArrivalTime < next) {
					next = e.process.ArrivalTime
				}
			}
			clock = next
			running = -1
			continue
		}
		if started[selected] == -1 {
			started[selected] = clock
		}
		step := 1
		if remaining[selected] <= 0 {
			step = 0
		}
		if running == selected && len(schedule) > 0 && schedule[len(schedule)-1].Finish == clock {
			schedule[len(schedule)-1].Finish += step
		} else {
			schedule = append(schedule, slice(pending[selected], clock, clock+step, palette))
		}
		running = selected
		remaining[selected] -= step
		clock += step
		if remaining[selected] <= 0 {
			finished[selected] = true
			finishTimes[selected] = clock
			completion = append(completion, selected)
			done++
		}
	}
	results := make(model.Processes, 0, len(completion))
	for _, i := range completion {
		results = append(results, pending[i].process.WithSchedule(started[i], finishTimes[i]))
	}
	return schedule, results
}

// RoundRobin cycles a FIFO ready queue granting each turn min(quantum, remaining) units.
// Arrival times do not gate dispatch; every process is queued at time zero in insertion order.
func RoundRobin(processes model.Processes, quantum, palette int) (model.Timeline, model.Processes, error) {
	if quantum <= 0 {
		return nil, nil, types.NewValidationError("", "quantum", "must be > 0")
	}
	type turn struct {
		*entry
		remaining int
		start     int
	}
	queue := make([]*turn, 0, len(processes))
	for _, e := range entries(processes) {
		queue = append(queue, &turn{entry: e, remaining: e.process.BurstTime, start: -1})
	}
	var schedule model.Timeline
	results := make(model.Processes, 0, len(processes))
	clock := 0
	for len(results) < len(processes) {
		// every dequeued turn either completes or is requeued, so an empty
		// queue here means the bookkeeping above is broken
		if len(queue) == 0 {
			return schedule, results, &types.IncompleteRunError{Completed: len(results), Total: len(processes)}
		}
		current := queue[0]
		queue = queue[1:]
		if current.start == -1 {
			current.start = clock
		}
		executed := min(quantum, current.remaining)
		if executed < 0 {
			executed = 0
		}
		schedule = append(schedule, slice(current.entry, clock, clock+executed, palette))
		current.remaining -= executed
		clock += executed
		if current.remaining > 0 {
			queue = append(queue, current)
			continue
		}
		results = append(results, current.process.WithSchedule(current.start, clock))
	}
	return schedule, results, nil
}
