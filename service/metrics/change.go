package metrics

import "github.com/viant/ossim/model"

// Changes holds percentage deltas between two consecutive runs
type Changes struct {
	AverageWaitingTime    *float64 `json:"averageWaitingTime,omitempty" yaml:"averageWaitingTime,omitempty"`
	AverageTurnaroundTime *float64 `json:"averageTurnaroundTime,omitempty" yaml:"averageTurnaroundTime,omitempty"`
	CPUUtilization        *float64 `json:"cpuUtilization,omitempty" yaml:"cpuUtilization,omitempty"`
	MemoryUtilization     *float64 `json:"memoryUtilization,omitempty" yaml:"memoryUtilization,omitempty"`
}

// Compare computes deltas for the metrics present in both runs
func Compare(current, previous *model.Metrics) *Changes {
	ret := &Changes{}
	if current == nil || previous == nil {
		return ret
	}
	if c, p := current.Scheduling, previous.Scheduling; c != nil && p != nil {
		ret.AverageWaitingTime = change(c.AverageWaitingTime, p.AverageWaitingTime)
		ret.AverageTurnaroundTime = change(c.AverageTurnaroundTime, p.AverageTurnaroundTime)
		ret.CPUUtilization = change(c.CPUUtilization, p.CPUUtilization)
	}
	if c, p := current.Memory, previous.Memory; c != nil && p != nil {
		ret.MemoryUtilization = change(c.Utilization, p.Utilization)
	}
	return ret
}

func change(current, previous float64) *float64 {
	value, ok := Change(current, previous)
	if !ok {
		return nil
	}
	return &value
}
