package dispatcher

import (
	"github.com/uber-go/tally"
)

// Metrics contains counters to track dispatcher runs
type Metrics struct {
	scope tally.Scope
	// counter to track successful runs
	runs tally.Counter
	// counter to track failed runs
	runFailures tally.Counter
	// counter to track runs rejected before an engine was invoked
	rejected tally.Counter
	// counter to track processes submitted across runs
	processes tally.Counter
	// timer to track run duration
	runDuration tally.Timer
	// gauges with the latest aggregate values
	cpuUtilization    tally.Gauge
	memoryUtilization tally.Gauge
	deadlocked        tally.Gauge
}

// NewMetrics returns a new Metrics struct.
func NewMetrics(scope tally.Scope) *Metrics {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Metrics{
		scope:             scope,
		runs:              scope.Counter("runs"),
		runFailures:       scope.Counter("run_failures"),
		rejected:          scope.Counter("rejected"),
		processes:         scope.Counter("processes"),
		runDuration:       scope.Timer("run_duration"),
		cpuUtilization:    scope.Gauge("cpu_utilization"),
		memoryUtilization: scope.Gauge("memory_utilization"),
		deadlocked:        scope.Gauge("deadlocked"),
	}
}

// operation returns a counter tagged with the operation tag.
func (m *Metrics) operation(name, tag string) tally.Counter {
	return m.scope.Tagged(map[string]string{"operation": tag}).Counter(name)
}
