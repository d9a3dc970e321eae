package scheduler

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

// Name of the service as used by the dispatcher.
const Name = "scheduler"

// DefaultQuantum is the default round robin time slice
const DefaultQuantum = 3

// Input represents a scheduling run request
type Input struct {
	Processes model.Processes
	Quantum   int
	Palette   int
}

// Output represents a scheduling run result
type Output struct {
	Schedule model.Timeline
	Results  model.Processes
}

// Service exposes CPU scheduling algorithms, one method per operation tag.
type Service struct{}

// New creates a scheduler service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		signature(model.FCFS, "Runs processes in order of arrival."),
		signature(model.SJF, "Runs the shortest arrived job to completion."),
		signature(model.SRTF, "Shortest remaining time first, served by non-preemptive shortest job selection."),
		signature(model.PreemptiveSRTF, "Shortest remaining time first with per-unit preemption."),
		signature(model.RoundRobin, "Cycles a FIFO ready queue with a fixed time quantum."),
		signature(model.Priority, "Runs the most urgent arrived process to completion."),
	}
}

func signature(op model.Operation, description string) types.Signature {
	return types.Signature{
		Name:        string(op),
		Description: description,
		Input:       reflect.TypeOf(&Input{}),
		Output:      reflect.TypeOf(&Output{}),
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch model.Operation(strings.ToLower(name)) {
	case model.FCFS:
		return s.run(FCFS), nil
	case model.SJF:
		return s.run(SJF), nil
	case model.SRTF:
		return s.run(SRTF), nil
	case model.PreemptiveSRTF:
		return s.run(PreemptiveSRTF), nil
	case model.Priority:
		return s.run(Priority), nil
	case model.RoundRobin:
		return s.roundRobin, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

type algorithm func(processes model.Processes, palette int) (model.Timeline, model.Processes)

func (s *Service) run(fn algorithm) types.Executable {
	return func(ctx context.Context, in, out interface{}) error {
		input, output, err := s.io(in, out)
		if err != nil {
			return err
		}
		output.Schedule, output.Results = fn(input.Processes, input.Palette)
		return nil
	}
}

func (s *Service) roundRobin(ctx context.Context, in, out interface{}) error {
	input, output, err := s.io(in, out)
	if err != nil {
		return err
	}
	quantum := input.Quantum
	if quantum == 0 {
		quantum = DefaultQuantum
	}
	output.Schedule, output.Results, err = RoundRobin(input.Processes, quantum, input.Palette)
	return err
}

func (s *Service) io(in, out interface{}) (*Input, *Output, error) {
	input, ok := in.(*Input)
	if !ok {
		return nil, nil, types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return nil, nil, types.NewInvalidOutputError(out)
	}
	return input, output, nil
}
