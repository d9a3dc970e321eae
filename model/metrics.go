package model

// SchedulingMetrics represents aggregate scheduling statistics
type SchedulingMetrics struct {
	AverageWaitingTime    float64 `json:"averageWaitingTime" yaml:"averageWaitingTime"`
	AverageTurnaroundTime float64 `json:"averageTurnaroundTime" yaml:"averageTurnaroundTime"`
	CPUUtilization        float64 `json:"cpuUtilization" yaml:"cpuUtilization"`
	Throughput            float64 `json:"throughput" yaml:"throughput"`
	TotalProcesses        int     `json:"totalProcesses" yaml:"totalProcesses"`
	TotalExecutionTime    int     `json:"totalExecutionTime" yaml:"totalExecutionTime"`
}

// MemoryMetrics represents aggregate allocation statistics
type MemoryMetrics struct {
	TotalMemory           int     `json:"totalMemory" yaml:"totalMemory"`
	UsedMemory            int     `json:"usedMemory" yaml:"usedMemory"`
	FreeMemory            int     `json:"freeMemory" yaml:"freeMemory"`
	Utilization           float64 `json:"utilization" yaml:"utilization"`
	Fragmentation         int     `json:"fragmentation" yaml:"fragmentation"`
	SuccessfulAllocations int     `json:"successfulAllocations" yaml:"successfulAllocations"`
	FailedAllocations     int     `json:"failedAllocations" yaml:"failedAllocations"`
}

// DeadlockMetrics represents deadlock detection statistics
type DeadlockMetrics struct {
	TotalProcesses      int `json:"totalProcesses" yaml:"totalProcesses"`
	DeadlockedProcesses int `json:"deadlockedProcesses" yaml:"deadlockedProcesses"`
	SafeProcesses       int `json:"safeProcesses" yaml:"safeProcesses"`
}

// Metrics holds the statistics of one run, only the family that ran is set
type Metrics struct {
	Scheduling *SchedulingMetrics `json:"scheduling,omitempty" yaml:"scheduling,omitempty"`
	Memory     *MemoryMetrics     `json:"memory,omitempty" yaml:"memory,omitempty"`
	Deadlock   *DeadlockMetrics   `json:"deadlock,omitempty" yaml:"deadlock,omitempty"`
}

// Clone returns a deep copy of the metrics
func (m *Metrics) Clone() *Metrics {
	if m == nil {
		return nil
	}
	ret := &Metrics{}
	if m.Scheduling != nil {
		scheduling := *m.Scheduling
		ret.Scheduling = &scheduling
	}
	if m.Memory != nil {
		memory := *m.Memory
		ret.Memory = &memory
	}
	if m.Deadlock != nil {
		deadlock := *m.Deadlock
		ret.Deadlock = &deadlock
	}
	return ret
}
