package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viant/ossim/extension"
	"github.com/viant/ossim/internal/clock"
	"github.com/viant/ossim/internal/idgen"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/progress"
	"github.com/viant/ossim/service/allocation"
	"github.com/viant/ossim/service/deadlock"
	"github.com/viant/ossim/service/event"
	"github.com/viant/ossim/service/metrics"
	"github.com/viant/ossim/service/scheduler"
	"github.com/viant/ossim/tracing"
	"go.uber.org/multierr"
)

// RunIDKey is the run context key holding the current run identifier.
const RunIDKey = "runID"

var services = map[model.Family]string{
	model.FamilyScheduling: scheduler.Name,
	model.FamilyMemory:     allocation.Name,
	model.FamilyDeadlock:   deadlock.Name,
}

// Service dispatches operation tags to engine actions.
type Service struct {
	actions   *extension.Actions
	config    *Config
	logger    logrus.FieldLogger
	metrics   *Metrics
	publisher *event.Publisher[*model.Envelope]
}

// Config returns the active run parameters.
func (s *Service) Config() *Config {
	return s.config
}

// Execute runs the operation identified by tag over a snapshot of processes.
// The supplied records are never modified.
func (s *Service) Execute(ctx context.Context, tag string, processes model.Processes) (envelope *model.Envelope, err error) {
	started := clock.Now()
	operation, err := model.ParseOperation(tag)
	if err != nil {
		s.metrics.rejected.Inc(1)
		s.logger.WithError(err).WithField("operation", tag).Warn("rejected run")
		return nil, err
	}
	family := operation.Family()
	runID := idgen.New()
	ctx = types.EnsureRunContext(ctx, RunIDKey, runID)

	ctx, span := tracing.StartSpan(ctx, "ossim."+string(operation), "INTERNAL")
	span.WithAttributes(map[string]string{
		"operation": string(operation),
		"section":   string(family),
		"run.id":    runID,
	}).WithInt("processes", len(processes))
	defer func() {
		tracing.EndSpan(span, err)
		s.complete(ctx, runID, operation, len(processes), started, envelope, err)
	}()

	if !policy.FromContext(ctx).IsAllowed(string(family), string(operation)) {
		return nil, fmt.Errorf("%w: %v", types.ErrOperationNotAllowed, operation)
	}
	if len(processes) == 0 {
		return nil, &types.EmptyInputError{}
	}
	if err = validate(family, operation, processes); err != nil {
		return nil, err
	}
	snapshot := make(model.Processes, len(processes))
	for i, p := range processes {
		snapshot[i] = p.Reset()
	}

	executable, _, err := s.actions.Method(services[family], string(operation))
	if err != nil {
		return nil, err
	}

	envelope = &model.Envelope{Operation: operation}
	switch family {
	case model.FamilyScheduling:
		quantum := s.config.Quantum
		if quantum == 0 {
			quantum = scheduler.DefaultQuantum
		}
		output := &scheduler.Output{}
		if err = executable(ctx, &scheduler.Input{Processes: snapshot, Quantum: quantum, Palette: s.config.Palette}, output); err != nil {
			return nil, err
		}
		envelope.Algorithm = operation.Label(quantum)
		envelope.Schedule = output.Schedule
		envelope.Results = output.Results
		envelope.Metrics.Scheduling = metrics.Scheduling(output.Results)
	case model.FamilyMemory:
		capacity := s.config.Capacity
		if capacity == 0 {
			capacity = model.DefaultCapacity
		}
		output := &allocation.Output{}
		if err = executable(ctx, &allocation.Input{Processes: snapshot, Capacity: capacity}, output); err != nil {
			return nil, err
		}
		envelope.Algorithm = operation.Label(0)
		envelope.Memory = output.Memory
		envelope.Results = output.Results
		envelope.Metrics.Memory = metrics.Memory(output.Memory, output.Results, capacity)
	case model.FamilyDeadlock:
		output := &deadlock.Output{}
		input := &deadlock.Input{Processes: snapshot, Derive: s.config.Derive, Available: s.config.Available}
		if err = executable(ctx, input, output); err != nil {
			return nil, err
		}
		envelope.Algorithm = operation.Label(0)
		envelope.Allocation = output.Matrices.Allocation
		envelope.Request = output.Matrices.Request
		envelope.Available = output.Matrices.Available
		envelope.Deadlocked = append([]int{}, output.Result.Deadlocked...)
		envelope.Results = output.Results
		envelope.Metrics.Deadlock = metrics.Deadlock(output.Results)
	}
	return envelope, nil
}

// validate checks every record and aggregates all failures.
func validate(family model.Family, operation model.Operation, processes model.Processes) error {
	var err error
	names := make(map[string]bool, len(processes))
	for _, p := range processes {
		if vErr := p.Validate(family, operation); vErr != nil {
			err = multierr.Append(err, vErr)
			continue
		}
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if names[key] {
			err = multierr.Append(err, types.NewValidationError(p.Name, "processName", "must be unique"))
		}
		names[key] = true
	}
	return err
}

// complete reports the finished run to metrics, logs, progress and events.
func (s *Service) complete(ctx context.Context, runID string, operation model.Operation, count int, started time.Time, envelope *model.Envelope, err error) {
	elapsed := clock.Now().Sub(started)
	s.metrics.runDuration.Record(elapsed)
	s.metrics.processes.Inc(int64(count))
	fields := logrus.Fields{
		"run":       runID,
		"operation": operation,
		"processes": count,
		"duration":  elapsed,
	}
	eventType := event.TypeExecuted
	if err != nil {
		eventType = event.TypeFailed
		s.metrics.runFailures.Inc(1)
		s.metrics.operation("run_failures", string(operation)).Inc(1)
		s.logger.WithFields(fields).WithError(err).Warn("run failed")
	} else {
		s.metrics.runs.Inc(1)
		s.metrics.operation("runs", string(operation)).Inc(1)
		fields["algorithm"] = envelope.Algorithm
		s.recordGauges(envelope)
		s.logger.WithFields(fields).Info("run completed")
		progress.UpdateCtx(ctx, delta(envelope))
	}
	s.publish(ctx, &event.Context{
		RunID:       runID,
		EventType:   eventType,
		Operation:   string(operation),
		Section:     string(operation.Family()),
		Service:     services[operation.Family()],
		Method:      string(operation),
		Processes:   count,
		TimeTakenMs: int(elapsed.Milliseconds()),
	}, envelope, err)
}

func (s *Service) recordGauges(envelope *model.Envelope) {
	m := envelope.Metrics
	if m.Scheduling != nil {
		s.metrics.cpuUtilization.Update(m.Scheduling.CPUUtilization)
	}
	if m.Memory != nil {
		s.metrics.memoryUtilization.Update(m.Memory.Utilization)
	}
	if m.Deadlock != nil {
		s.metrics.deadlocked.Update(float64(m.Deadlock.DeadlockedProcesses))
	}
}

func (s *Service) publish(ctx context.Context, eCtx *event.Context, envelope *model.Envelope, err error) {
	if s.publisher == nil {
		return
	}
	anEvent := event.NewEvent[*model.Envelope](eCtx, envelope.Clone())
	if err != nil {
		anEvent.Metadata["error"] = err.Error()
	}
	if pErr := s.publisher.Publish(context.WithoutCancel(ctx), anEvent); pErr != nil {
		s.logger.WithError(pErr).WithField("run", eCtx.RunID).Warn("failed to publish run event")
	}
}

func delta(envelope *model.Envelope) progress.Delta {
	ret := progress.Delta{Runs: 1, Total: len(envelope.Results)}
	for _, p := range envelope.Results {
		switch p.Status {
		case model.StatusCompleted:
			ret.Completed++
		case model.StatusAllocated:
			ret.Allocated++
		case model.StatusFailed:
			ret.Failed++
		case model.StatusDeadlocked:
			ret.Deadlocked++
		case model.StatusSafe:
			ret.Safe++
		}
	}
	return ret
}

// New creates a dispatcher wired to the scheduling, allocation and deadlock
// engines unless WithActions overrides the registry.
func New(opts ...Option) *Service {
	ret := &Service{
		config: DefaultConfig(),
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.actions == nil {
		ret.actions = extension.NewActions(scheduler.New(), allocation.New(), deadlock.New())
	}
	if ret.metrics == nil {
		ret.metrics = NewMetrics(nil)
	}
	if ret.logger == nil {
		ret.logger = logrus.StandardLogger()
	}
	return ret
}
