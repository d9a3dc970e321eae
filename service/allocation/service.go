package allocation

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

// Name of the service as used by the dispatcher.
const Name = "allocation"

// Input represents an allocation run request
type Input struct {
	Processes model.Processes
	Capacity  int
}

// Output represents an allocation run result
type Output struct {
	Memory  model.Memory
	Results model.Processes
}

// Service exposes contiguous memory placement strategies
type Service struct{}

// New creates an allocation service
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
		signature(model.FirstFit, "Places each process in the first free run that fits."),
		signature(model.BestFit, "Places each process in the smallest free run that fits."),
		signature(model.WorstFit, "Places each process in the largest free run that fits."),
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
	case model.FirstFit:
		return s.allocate(FirstFit), nil
	case model.BestFit:
		return s.allocate(BestFit), nil
	case model.WorstFit:
		return s.allocate(WorstFit), nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) allocate(strategy Strategy) types.Executable {
	return func(ctx context.Context, in, out interface{}) error {
		input, ok := in.(*Input)
		if !ok {
			return types.NewInvalidInputError(in)
		}
		output, ok := out.(*Output)
		if !ok {
			return types.NewInvalidOutputError(out)
		}
		capacity := input.Capacity
		if capacity == 0 {
			capacity = model.DefaultCapacity
		}
		output.Memory, output.Results = Allocate(input.Processes, capacity, strategy)
		return nil
	}
}
